// Morph Lab - an interactive tool for tuning the particle morph.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/internal/config"
	"github.com/Faultbox/pointmorph/internal/lab"
	"github.com/Faultbox/pointmorph/internal/logger"
)

func main() {
	runtime.LockOSThread()
	os.Exit(run())
}

// run returns the process exit code. Deferred cleanup runs before main
// exits.
func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== PointMorph Lab ===")

	app, err := lab.New(cfg)
	if err != nil {
		logger.Error("failed to create lab", zap.Error(err))
		return 1
	}
	defer app.Close()

	app.Run()
	logger.Info("lab closed normally")
	return 0
}
