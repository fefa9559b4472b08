package cmd

import (
	"cleanpack/pkg/archive"

	"go.uber.org/zap"
)

// runPack packages the working directory with the default configuration.
func runPack(logger *zap.Logger) error {
	return archive.Execute(logger)
}
