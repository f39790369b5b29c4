//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
)

// RegistryRoot names a hive by the short tag the entry id scheme uses
// ("HKCU", "HKLM"), so backups and ids stay human-readable.
type RegistryRoot string

const (
	RootCurrentUser  RegistryRoot = "HKCU"
	RootLocalMachine RegistryRoot = "HKLM"
)

func (r RegistryRoot) key() registry.Key {
	if r == RootLocalMachine {
		return registry.LOCAL_MACHINE
	}
	return registry.CURRENT_USER
}

// RegistryView selects the native or 32-bit-redirected registry view.
type RegistryView uint32

const (
	ViewNative RegistryView = RegistryView(registry.WOW64_64KEY)
	View32Bit  RegistryView = RegistryView(registry.WOW64_32KEY)
)

// ReadStringValues opens keyPath under root/view and returns every
// (name, data) pair with a string-typed value, skipping values of other
// types rather than failing the whole read.
func ReadStringValues(root RegistryRoot, view RegistryView, keyPath string) (map[string]string, error) {
	key, err := registry.OpenKey(root.key(), keyPath, registry.QUERY_VALUE|uint32(view))
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, nil
		}
		return nil, fmt.Errorf("open key %s: %w", keyPath, err)
	}
	defer key.Close()

	names, err := key.ReadValueNames(-1)
	if err != nil {
		return nil, fmt.Errorf("read value names %s: %w", keyPath, err)
	}

	out := make(map[string]string, len(names))
	for _, name := range names {
		val, valType, err := key.GetStringValue(name)
		if err != nil {
			continue
		}
		if valType != registry.SZ && valType != registry.EXPAND_SZ {
			continue
		}
		out[name] = val
	}
	return out, nil
}

// ReadIntegerValue reads a single DWORD/QWORD value, returning ok=false if
// the key or value is absent.
func ReadIntegerValue(root RegistryRoot, view RegistryView, keyPath, valueName string) (value uint64, ok bool, err error) {
	key, err := registry.OpenKey(root.key(), keyPath, registry.QUERY_VALUE|uint32(view))
	if err != nil {
		if err == registry.ErrNotExist {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("open key %s: %w", keyPath, err)
	}
	defer key.Close()

	v, _, err := key.GetIntegerValue(valueName)
	if err != nil {
		if err == registry.ErrNotExist {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read %s\\%s: %w", keyPath, valueName, err)
	}
	return v, true, nil
}

// SetIntegerValue writes a DWORD value, creating the key if necessary.
func SetIntegerValue(root RegistryRoot, view RegistryView, keyPath, valueName string, value uint32) error {
	key, _, err := registry.CreateKey(root.key(), keyPath, registry.SET_VALUE|uint32(view))
	if err != nil {
		return fmt.Errorf("create/open key %s: %w", keyPath, err)
	}
	defer key.Close()
	return key.SetDWordValue(valueName, value)
}

// SetStringValue writes a string value, creating the key if necessary.
func SetStringValue(root RegistryRoot, view RegistryView, keyPath, valueName, data string) error {
	key, _, err := registry.CreateKey(root.key(), keyPath, registry.SET_VALUE|uint32(view))
	if err != nil {
		return fmt.Errorf("create/open key %s: %w", keyPath, err)
	}
	defer key.Close()
	return key.SetStringValue(valueName, data)
}

// DeleteValue removes a single value; a missing key or value is not an error.
func DeleteValue(root RegistryRoot, view RegistryView, keyPath, valueName string) error {
	key, err := registry.OpenKey(root.key(), keyPath, registry.SET_VALUE|uint32(view))
	if err != nil {
		if err == registry.ErrNotExist {
			return nil
		}
		return fmt.Errorf("open key %s: %w", keyPath, err)
	}
	defer key.Close()

	if err := key.DeleteValue(valueName); err != nil && err != registry.ErrNotExist {
		return fmt.Errorf("delete %s\\%s: %w", keyPath, valueName, err)
	}
	return nil
}

// ReadMultiStringValue reads a REG_MULTI_SZ value, returning ok=false if the
// key or value is absent. Used by the BootExecute and LSA package list
// collectors, both of which store their entries as a multi-string.
func ReadMultiStringValue(root RegistryRoot, view RegistryView, keyPath, valueName string) (values []string, ok bool, err error) {
	key, err := registry.OpenKey(root.key(), keyPath, registry.QUERY_VALUE|uint32(view))
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open key %s: %w", keyPath, err)
	}
	defer key.Close()

	v, _, err := key.GetStringsValue(valueName)
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s\\%s: %w", keyPath, valueName, err)
	}
	return v, true, nil
}

// ReadBinaryValue reads a REG_BINARY value's raw bytes.
func ReadBinaryValue(root RegistryRoot, view RegistryView, keyPath, valueName string) (data []byte, ok bool, err error) {
	key, err := registry.OpenKey(root.key(), keyPath, registry.QUERY_VALUE|uint32(view))
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open key %s: %w", keyPath, err)
	}
	defer key.Close()

	v, _, err := key.GetBinaryValue(valueName)
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s\\%s: %w", keyPath, valueName, err)
	}
	return v, true, nil
}

// SetBinaryValue writes a REG_BINARY value, creating the key if necessary.
func SetBinaryValue(root RegistryRoot, view RegistryView, keyPath, valueName string, data []byte) error {
	key, _, err := registry.CreateKey(root.key(), keyPath, registry.SET_VALUE|uint32(view))
	if err != nil {
		return fmt.Errorf("create/open key %s: %w", keyPath, err)
	}
	defer key.Close()
	return key.SetBinaryValue(valueName, data)
}

// ListValueNames enumerates every value name under keyPath regardless of
// type, used to walk a StartupApproved key's binary blobs by name.
func ListValueNames(root RegistryRoot, view RegistryView, keyPath string) ([]string, error) {
	key, err := registry.OpenKey(root.key(), keyPath, registry.QUERY_VALUE|uint32(view))
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, nil
		}
		return nil, fmt.Errorf("open key %s: %w", keyPath, err)
	}
	defer key.Close()

	names, err := key.ReadValueNames(-1)
	if err != nil {
		return nil, fmt.Errorf("read value names %s: %w", keyPath, err)
	}
	return names, nil
}

// ListSubKeyNames enumerates the immediate child key names of keyPath.
func ListSubKeyNames(root RegistryRoot, view RegistryView, keyPath string) ([]string, error) {
	key, err := registry.OpenKey(root.key(), keyPath, registry.ENUMERATE_SUB_KEYS|uint32(view))
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, nil
		}
		return nil, fmt.Errorf("open key %s: %w", keyPath, err)
	}
	defer key.Close()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("read subkeys %s: %w", keyPath, err)
	}
	return names, nil
}

// ApprovedBlob reads and writes the 12-byte StartupApproved companion
// value. Byte 0 is the enable flag (constants.ApprovedByteEnabled/Disabled);
// the rest is preserved verbatim on write when the caller supplies a prior
// blob, and zero-filled otherwise.
type ApprovedBlob [constants.ApprovedBlobSize]byte

// IsEnabled reports the enable flag; an absent companion defaults to
// enabled per the Run/RunOnce/StartupFolder collector contract.
func (b ApprovedBlob) IsEnabled() bool {
	return b[0] != constants.ApprovedByteDisabled
}

// ReadApprovedBlob reads the companion value, returning ok=false if absent.
func ReadApprovedBlob(root RegistryRoot, view RegistryView, approvedKeyPath, valueName string) (ApprovedBlob, bool, error) {
	data, ok, err := ReadBinaryValue(root, view, approvedKeyPath, valueName)
	if err != nil || !ok {
		return ApprovedBlob{}, ok, err
	}
	var blob ApprovedBlob
	copy(blob[:], data)
	return blob, true, nil
}

// WriteApprovedBlob sets byte 0 of the companion value to enabled/disabled,
// preserving the remaining 11 bytes of base if supplied.
func WriteApprovedBlob(root RegistryRoot, view RegistryView, approvedKeyPath, valueName string, enabled bool, base ApprovedBlob) error {
	blob := base
	if enabled {
		blob[0] = constants.ApprovedByteEnabled
	} else {
		blob[0] = constants.ApprovedByteDisabled
	}
	return SetBinaryValue(root, view, approvedKeyPath, valueName, blob[:])
}
