//go:build !windows

package platform

import "time"

type FileInfo struct {
	SizeBytes   int64
	ModifiedUTC time.Time
	CompanyName string
}

func StatFile(path string) (FileInfo, error) {
	return FileInfo{}, ErrNotSupported
}
