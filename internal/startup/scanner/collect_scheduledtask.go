package scanner

import (
	"context"
	"os"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

// collectLogonTasks enumerates every scheduled task with a logon trigger,
// emitting one StartupItem per exec action. Task registration is always
// treated as machine-scope: the Task Scheduler store itself is a
// machine-wide database even when an individual task runs as a specific
// user, and this engine has no reliable way to read the run-as principal
// from `schtasks /query /xml` output alone.
func collectLogonTasks(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	tasks, err := platform.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !task.HasLogonTrigger {
			continue
		}

		for i, action := range task.Actions {
			command := os.ExpandEnv(action.Command)

			item := models.StartupItem{
				ID:             models.ScheduledTaskID(task.Path, i),
				Name:           task.Path,
				SourceTag:      "Scheduled Task",
				SourceKind:     models.SourceScheduledTask,
				ExecutablePath: command,
				Arguments:      action.Arguments,
				RawCommand:     platform.JoinCommand(command, action.Arguments),
				IsEnabled:      task.Enabled,
				EntryLocation:  task.Path,
				UserContext:    models.UserContextMachine,
			}

			meta := resolveExecutableMeta(command)
			item.FileSizeBytes = meta.sizeBytes
			item.LastModified = meta.lastModified
			item.Publisher = meta.publisher
			item.Signature = meta.signature
			item.Impact = classifyImpact(models.SourceScheduledTask, true, false, meta.sizeBytes, meta.sizeKnown)

			items = append(items, item)
		}
	}

	return items, nil
}
