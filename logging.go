package biketraffic

import (
	"log/slog"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
)

// InitLogging installs the default structured logger at level.
func InitLogging(level string) *slog.Logger {
	return internal.InitLogging(level)
}
