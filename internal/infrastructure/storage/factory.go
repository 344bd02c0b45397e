package storage

import (
	"fmt"
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/config"
)

// New constructs the storage backend selected by storage.driver
func New(cfg *config.StorageConfig) (delivery.DocumentStorage, error) {
	nowMillis := func() int64 { return time.Now().UnixMilli() }

	switch cfg.Driver {
	case "s3":
		return NewS3Storage(cfg, nowMillis)
	case "local":
		return NewLocalStorage(cfg.LocalDir, nowMillis), nil
	case "none":
		return NewNoopStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
