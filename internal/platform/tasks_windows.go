//go:build windows

package platform

import (
	"context"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ScheduledTask is one task discovered by ListTasks.
type ScheduledTask struct {
	Path          string
	Enabled       bool
	HasLogonTrigger bool
	Actions       []TaskAction
}

// TaskAction is one <Exec> action of a task's <Actions> element.
type TaskAction struct {
	Command   string
	Arguments string
}

// taskDefinitionXML mirrors the subset of the Task Scheduler XML schema
// this engine reads and writes: logon triggers and Exec actions.
type taskDefinitionXML struct {
	XMLName  xml.Name `xml:"Task"`
	Triggers struct {
		LogonTrigger []struct {
			Enabled string `xml:"Enabled"`
		} `xml:"LogonTrigger"`
	} `xml:"Triggers"`
	Actions struct {
		Exec []struct {
			Command   string `xml:"Command"`
			Arguments string `xml:"Arguments"`
		} `xml:"Exec"`
	} `xml:"Actions"`
	Settings struct {
		Enabled string `xml:"Enabled"`
	} `xml:"Settings"`
}

// ListTasks enumerates every scheduled task via `schtasks /query /csv` for
// the name/status pass, then exports each candidate's XML to classify its
// triggers and actions. Cancellable between tasks.
func ListTasks(ctx context.Context) ([]ScheduledTask, error) {
	out, err := exec.CommandContext(ctx, "schtasks", "/query", "/fo", "CSV", "/nh").Output()
	if err != nil {
		return nil, fmt.Errorf("schtasks /query: %w", err)
	}

	r := csv.NewReader(strings.NewReader(string(out)))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse schtasks csv: %w", err)
	}

	var tasks []ScheduledTask
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(rec) < 3 {
			continue
		}
		taskPath := rec[0]
		if taskPath == "" || taskPath == "TaskName" {
			continue
		}

		def, err := ExportTaskXML(ctx, taskPath)
		if err != nil {
			continue
		}
		tasks = append(tasks, def)
	}
	return tasks, nil
}

// ExportTaskXML exports and parses one task's definition.
func ExportTaskXML(ctx context.Context, taskPath string) (ScheduledTask, error) {
	out, err := exec.CommandContext(ctx, "schtasks", "/query", "/tn", taskPath, "/xml").Output()
	if err != nil {
		return ScheduledTask{}, fmt.Errorf("schtasks /query /xml %s: %w", taskPath, err)
	}

	var def taskDefinitionXML
	if err := xml.Unmarshal(out, &def); err != nil {
		return ScheduledTask{}, fmt.Errorf("parse task xml %s: %w", taskPath, err)
	}

	task := ScheduledTask{
		Path:            taskPath,
		Enabled:         def.Settings.Enabled != "false",
		HasLogonTrigger: len(def.Triggers.LogonTrigger) > 0,
	}
	for _, a := range def.Actions.Exec {
		task.Actions = append(task.Actions, TaskAction{Command: a.Command, Arguments: a.Arguments})
	}
	return task, nil
}

// SetTaskEnabled enables or disables a task in place.
func SetTaskEnabled(ctx context.Context, taskPath string, enabled bool) error {
	flag := "/Disable"
	if enabled {
		flag = "/Enable"
	}
	if err := exec.CommandContext(ctx, "schtasks", "/Change", "/TN", taskPath, flag).Run(); err != nil {
		return fmt.Errorf("schtasks /Change %s %s: %w", taskPath, flag, err)
	}
	return nil
}

// RegisterDelayedTask creates a logon-triggered task at taskPath that runs
// command/arguments a fixed delay after each logon, with the
// settings the Delay Service contract requires (StartWhenAvailable,
// MultipleInstances=IgnoreNew, a 5 minute execution limit, battery allowed).
func RegisterDelayedTask(ctx context.Context, taskPath, command, arguments string, delaySeconds int) error {
	xmlDef := buildDelayedTaskXML(command, arguments, delaySeconds)

	tmpFile, cleanup, err := writeTempXML(xmlDef)
	if err != nil {
		return fmt.Errorf("write task xml: %w", err)
	}
	defer cleanup()

	if err := exec.CommandContext(ctx, "schtasks", "/Create", "/TN", taskPath, "/XML", tmpFile, "/F").Run(); err != nil {
		return fmt.Errorf("schtasks /Create %s: %w", taskPath, err)
	}
	return nil
}

// DeleteTask removes a scheduled task.
func DeleteTask(ctx context.Context, taskPath string) error {
	if err := exec.CommandContext(ctx, "schtasks", "/Delete", "/TN", taskPath, "/F").Run(); err != nil {
		return fmt.Errorf("schtasks /Delete %s: %w", taskPath, err)
	}
	return nil
}

func buildDelayedTaskXML(command, arguments string, delaySeconds int) string {
	delayISO := fmt.Sprintf("PT%dS", delaySeconds)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-16"?>
<Task version="1.2" xmlns="http://schemas.microsoft.com/windows/2004/02/mit/task">
  <Triggers>
    <LogonTrigger>
      <Enabled>true</Enabled>
      <Delay>%s</Delay>
    </LogonTrigger>
  </Triggers>
  <Settings>
    <MultipleInstancesPolicy>IgnoreNew</MultipleInstancesPolicy>
    <DisallowStartIfOnBatteries>false</DisallowStartIfOnBatteries>
    <StopIfGoingOnBatteries>false</StopIfGoingOnBatteries>
    <StartWhenAvailable>true</StartWhenAvailable>
    <ExecutionTimeLimit>PT5M</ExecutionTimeLimit>
    <Enabled>true</Enabled>
  </Settings>
  <Actions>
    <Exec>
      <Command>%s</Command>
      <Arguments>%s</Arguments>
    </Exec>
  </Actions>
</Task>`, delayISO, xmlEscape(command), xmlEscape(arguments))
}

func xmlEscape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

func writeTempXML(content string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "tidywindow-task-*.xml")
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		os.Remove(f.Name())
		return "", nil, err
	}

	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
