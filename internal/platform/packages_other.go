//go:build !windows

package platform

type PackagedApp struct {
	FamilyName       string
	PackageFullName  string
}

func ListPackagedApps() ([]PackagedApp, error) {
	return nil, ErrNotSupported
}

func ListPackageFamiliesFromRegistry() ([]string, error) {
	return nil, ErrNotSupported
}
