package memory

import (
	"log/slog"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Logger *slog.Logger
}
