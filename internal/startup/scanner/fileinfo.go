package scanner

import (
	"os"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

// executableMeta is the file-derived metadata a collector attaches to an
// item: size/mtime for impact classification, publisher for the classifier
// and for filtering Microsoft-published extended entries, and the
// Authenticode verdict for the safe-to-disable rule. Any field the
// underlying file can't be statted/verified for is left at its zero value.
type executableMeta struct {
	sizeBytes    int64
	sizeKnown    bool
	lastModified time.Time
	publisher    string
	signature    models.SignatureStatus
}

func resolveExecutableMeta(executablePath string) executableMeta {
	meta := executableMeta{signature: models.SignatureUnknown}
	if executablePath == "" {
		return meta
	}

	expanded := os.ExpandEnv(executablePath)

	if info, err := platform.StatFile(expanded); err == nil {
		meta.sizeBytes = info.SizeBytes
		meta.sizeKnown = true
		meta.lastModified = info.ModifiedUTC
		meta.publisher = info.CompanyName
	}

	if sig, err := platform.VerifySignature(expanded); err == nil {
		meta.signature = sig
	}

	return meta
}
