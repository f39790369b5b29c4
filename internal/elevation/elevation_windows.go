//go:build windows

// Package elevation reports and requests UAC elevation for operations that
// touch HKLM, machine services, or machine-scope scheduled tasks.
package elevation

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32         = syscall.NewLazyDLL("shell32.dll")
	shellExecuteExW = shell32.NewProc("ShellExecuteExW")
)

// SW_HIDE hides the elevated process's window.
const SW_HIDE = 0

// shellExecuteInfo mirrors SHELLEXECUTEINFOW.
// https://docs.microsoft.com/en-us/windows/win32/api/shellapi/ns-shellapi-shellexecuteinfow
type shellExecuteInfo struct {
	cbSize         uint32
	fMask          uint32
	hwnd           uintptr
	lpVerb         *uint16
	lpFile         *uint16
	lpParameters   *uint16
	lpDirectory    *uint16
	nShow          int32
	hInstApp       uintptr
	lpIDList       uintptr
	lpClass        *uint16
	hkeyClass      uintptr
	dwHotKey       uint32
	hIconOrMonitor uintptr
	hProcess       uintptr
}

// SEE_MASK_NOCLOSEPROCESS asks ShellExecuteExW to return a process handle.
const SEE_MASK_NOCLOSEPROCESS = 0x00000040

// IsElevated reports whether the current process token has the elevated
// privilege bit set. The Control and Delay Services check elevation before
// every mutation, whatever the entry's scope, rather than discovering the
// failure from the registry/SCM call itself.
func IsElevated() bool {
	var token windows.Token
	proc := windows.CurrentProcess()
	if err := windows.OpenProcessToken(proc, windows.TOKEN_QUERY, &token); err != nil {
		return false
	}
	defer token.Close()
	return token.IsElevated()
}

// RunElevated re-launches executable with args under a UAC "runas" prompt
// and waits for it to exit. RelaunchElevated uses it to re-run the current
// executable; no CLI command calls either function.
func RunElevated(executable string, args string, workingDir string) error {
	verbPtr, err := syscall.UTF16PtrFromString("runas")
	if err != nil {
		return fmt.Errorf("failed to convert verb: %w", err)
	}

	filePtr, err := syscall.UTF16PtrFromString(executable)
	if err != nil {
		return fmt.Errorf("failed to convert executable path: %w", err)
	}

	paramsPtr, err := syscall.UTF16PtrFromString(args)
	if err != nil {
		return fmt.Errorf("failed to convert parameters: %w", err)
	}

	var dirPtr *uint16
	if workingDir != "" {
		dirPtr, err = syscall.UTF16PtrFromString(workingDir)
		if err != nil {
			return fmt.Errorf("failed to convert directory: %w", err)
		}
	}

	sei := shellExecuteInfo{
		cbSize:       uint32(unsafe.Sizeof(shellExecuteInfo{})),
		fMask:        SEE_MASK_NOCLOSEPROCESS,
		lpVerb:       verbPtr,
		lpFile:       filePtr,
		lpParameters: paramsPtr,
		lpDirectory:  dirPtr,
		nShow:        SW_HIDE,
	}

	ret, _, err := shellExecuteExW.Call(uintptr(unsafe.Pointer(&sei)))
	if ret == 0 {
		if err != nil && err != syscall.Errno(0) {
			return fmt.Errorf("ShellExecuteExW failed: %w", err)
		}
		return fmt.Errorf("ShellExecuteExW failed with unknown error")
	}

	if sei.hProcess != 0 {
		syscall.WaitForSingleObject(syscall.Handle(sei.hProcess), syscall.INFINITE)
		syscall.CloseHandle(syscall.Handle(sei.hProcess))
	}

	return nil
}

// RelaunchElevated re-runs the current executable with the given argument
// list under UAC, for a CLI mutation command invoked without elevation.
func RelaunchElevated(args []string) error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	cwd, _ := os.Getwd()

	joined := ""
	for i, a := range args {
		if i > 0 {
			joined += " "
		}
		joined += syscall.EscapeArg(a)
	}

	return RunElevated(exePath, joined, cwd)
}
