package control

import (
	"context"
	"fmt"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const (
	serviceStartDisabled        = uint32(4)
	serviceStartDefaultAuto     = uint32(2)
	serviceDelayedAutoStartOff  = uint32(0)
)

func serviceSubKey(serviceName string) string {
	return `SYSTEM\CurrentControlSet\Services\` + serviceName
}

// serviceMutator implements the Service reversible protocol: disable
// captures Start and DelayedAutoStart, then forces Start=4 (Disabled) and
// DelayedAutoStart=0; enable restores both captured values.
type serviceMutator struct{}

func (serviceMutator) Disable(ctx context.Context, item models.StartupItem) (models.StartupItem, *models.StartupEntryBackup, error) {
	subKey := serviceSubKey(item.Name)

	startValue, _, err := platform.ReadIntegerValue(platform.RootLocalMachine, platform.ViewNative, subKey, "Start")
	if err != nil {
		return item, nil, fmt.Errorf("read service Start: %w", err)
	}
	delayedValue, _, err := platform.ReadIntegerValue(platform.RootLocalMachine, platform.ViewNative, subKey, "DelayedAutoStart")
	if err != nil {
		return item, nil, fmt.Errorf("read service DelayedAutoStart: %w", err)
	}

	backup := models.StartupEntryBackup{
		ItemID:     item.ID,
		Name:       item.Name,
		SourceKind: item.SourceKind,
		CreatedAt:  time.Now().UTC(),
		RestorePayload: models.RestorePayload{
			ServiceName:             item.Name,
			ServiceStartValue:       uint32(startValue),
			ServiceDelayedAutoStart: uint32(delayedValue),
		},
	}

	if err := platform.SetIntegerValue(platform.RootLocalMachine, platform.ViewNative, subKey, "Start", serviceStartDisabled); err != nil {
		return item, nil, fmt.Errorf("disable service: %w", err)
	}
	if err := platform.SetIntegerValue(platform.RootLocalMachine, platform.ViewNative, subKey, "DelayedAutoStart", serviceDelayedAutoStartOff); err != nil {
		return item, nil, fmt.Errorf("clear service DelayedAutoStart: %w", err)
	}

	updated := item
	updated.IsEnabled = false
	return updated, &backup, nil
}

func (serviceMutator) Enable(ctx context.Context, item models.StartupItem, backup *models.StartupEntryBackup) (models.StartupItem, error) {
	subKey := serviceSubKey(item.Name)

	startValue := serviceStartDefaultAuto
	delayedValue := serviceDelayedAutoStartOff
	if backup != nil {
		startValue = backup.RestorePayload.ServiceStartValue
		delayedValue = backup.RestorePayload.ServiceDelayedAutoStart
	}

	if err := platform.SetIntegerValue(platform.RootLocalMachine, platform.ViewNative, subKey, "Start", startValue); err != nil {
		return item, fmt.Errorf("restore service Start: %w", err)
	}
	if err := platform.SetIntegerValue(platform.RootLocalMachine, platform.ViewNative, subKey, "DelayedAutoStart", delayedValue); err != nil {
		return item, fmt.Errorf("restore service DelayedAutoStart: %w", err)
	}

	updated := item
	updated.IsEnabled = startValue != serviceStartDisabled
	return updated, nil
}
