//go:build windows

package platform

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// ShortcutApartment owns the single-threaded COM apartment shortcut
// resolution needs. The scanner calls InitApartment once on its dedicated
// worker goroutine (after runtime.LockOSThread, since COM STA state is
// thread-local) before resolving any .lnk files, and Close when the scan
// ends.
type ShortcutApartment struct {
	initialized bool
}

// InitApartment initializes a single-threaded COM apartment on the calling
// OS thread. The caller must have already called runtime.LockOSThread.
func InitApartment() (*ShortcutApartment, error) {
	if err := ole.CoInitialize(0); err != nil {
		return nil, fmt.Errorf("CoInitialize: %w", err)
	}
	return &ShortcutApartment{initialized: true}, nil
}

// Close uninitializes the COM apartment. Safe to call once.
func (a *ShortcutApartment) Close() {
	if a == nil || !a.initialized {
		return
	}
	ole.CoUninitialize()
	a.initialized = false
}

// ResolveShortcut reads a .lnk file's target path and argument string via
// the WScript.Shell COM automation object. Must be called from the
// goroutine that owns the ShortcutApartment.
func ResolveShortcut(lnkPath string) (targetPath string, arguments string, err error) {
	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return "", "", fmt.Errorf("create WScript.Shell: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return "", "", fmt.Errorf("query IDispatch: %w", err)
	}
	defer shell.Release()

	shortcutDisp, err := oleutil.CallMethod(shell, "CreateShortcut", lnkPath)
	if err != nil {
		return "", "", fmt.Errorf("CreateShortcut(%s): %w", lnkPath, err)
	}
	shortcut := shortcutDisp.ToIDispatch()
	defer shortcutDisp.Clear()

	targetProp, err := oleutil.GetProperty(shortcut, "TargetPath")
	if err != nil {
		return "", "", fmt.Errorf("TargetPath: %w", err)
	}
	defer targetProp.Clear()

	argsProp, err := oleutil.GetProperty(shortcut, "Arguments")
	if err != nil {
		return "", "", fmt.Errorf("Arguments: %w", err)
	}
	defer argsProp.Clear()

	return targetProp.ToString(), argsProp.ToString(), nil
}
