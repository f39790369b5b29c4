//go:build !windows

package platform

func CurrentUserSID() (string, error) {
	return "", ErrNotSupported
}
