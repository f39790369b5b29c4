//go:build !windows

package platform

import "github.com/Cosmos-0118/TidyWindow-sub010/internal/models"

func VerifySignature(filePath string) (models.SignatureStatus, error) {
	return models.SignatureUnknown, ErrNotSupported
}
