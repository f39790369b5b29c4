//go:build !windows

package platform

import (
	"errors"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
)

// ErrNotSupported is returned by every platform function on non-Windows hosts.
var ErrNotSupported = errors.New("platform operation is only supported on Windows")

type RegistryRoot string

const (
	RootCurrentUser  RegistryRoot = "HKCU"
	RootLocalMachine RegistryRoot = "HKLM"
)

type RegistryView uint32

const (
	ViewNative RegistryView = 0
	View32Bit  RegistryView = 1
)

func ReadStringValues(root RegistryRoot, view RegistryView, keyPath string) (map[string]string, error) {
	return nil, ErrNotSupported
}

func ReadIntegerValue(root RegistryRoot, view RegistryView, keyPath, valueName string) (uint64, bool, error) {
	return 0, false, ErrNotSupported
}

func SetIntegerValue(root RegistryRoot, view RegistryView, keyPath, valueName string, value uint32) error {
	return ErrNotSupported
}

func SetStringValue(root RegistryRoot, view RegistryView, keyPath, valueName, data string) error {
	return ErrNotSupported
}

func DeleteValue(root RegistryRoot, view RegistryView, keyPath, valueName string) error {
	return ErrNotSupported
}

func ReadBinaryValue(root RegistryRoot, view RegistryView, keyPath, valueName string) ([]byte, bool, error) {
	return nil, false, ErrNotSupported
}

func ReadMultiStringValue(root RegistryRoot, view RegistryView, keyPath, valueName string) ([]string, bool, error) {
	return nil, false, ErrNotSupported
}

func SetBinaryValue(root RegistryRoot, view RegistryView, keyPath, valueName string, data []byte) error {
	return ErrNotSupported
}

func ListSubKeyNames(root RegistryRoot, view RegistryView, keyPath string) ([]string, error) {
	return nil, ErrNotSupported
}

func ListValueNames(root RegistryRoot, view RegistryView, keyPath string) ([]string, error) {
	return nil, ErrNotSupported
}

type ApprovedBlob [constants.ApprovedBlobSize]byte

func (b ApprovedBlob) IsEnabled() bool {
	return b[0] != constants.ApprovedByteDisabled
}

func ReadApprovedBlob(root RegistryRoot, view RegistryView, approvedKeyPath, valueName string) (ApprovedBlob, bool, error) {
	return ApprovedBlob{}, false, ErrNotSupported
}

func WriteApprovedBlob(root RegistryRoot, view RegistryView, approvedKeyPath, valueName string, enabled bool, base ApprovedBlob) error {
	return ErrNotSupported
}
