//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// CurrentUserSID returns the SID string of the calling process's token user,
// used to scope per-user collectors (Run keys, startup folder, packaged
// tasks) and to recognize this user's own HKCU-rooted entries during a
// multi-user scan.
func CurrentUserSID() (string, error) {
	var token windows.Token
	proc := windows.CurrentProcess()
	if err := windows.OpenProcessToken(proc, windows.TOKEN_QUERY, &token); err != nil {
		return "", fmt.Errorf("OpenProcessToken: %w", err)
	}
	defer token.Close()

	tokenUser, err := token.GetTokenUser()
	if err != nil {
		return "", fmt.Errorf("GetTokenUser: %w", err)
	}

	return tokenUser.User.Sid.String(), nil
}
