//go:build !windows

package platform

type ShortcutApartment struct{}

func InitApartment() (*ShortcutApartment, error) {
	return nil, ErrNotSupported
}

func (a *ShortcutApartment) Close() {}

func ResolveShortcut(lnkPath string) (targetPath string, arguments string, err error) {
	return "", "", ErrNotSupported
}
