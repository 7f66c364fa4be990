package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the process-wide zap logger. Production environments get
// JSON output, everything else gets the human-readable development config.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch environment {
	case "production":
		l, err = zap.NewProduction()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
