// Command blockman opens a window with a walking block figure.
package main

import (
	"flag"
	"os"
	"runtime"

	"blockman/internal/config"
	"blockman/internal/game"
	"blockman/internal/logger"
)

// GLFW and OpenGL calls must come from the main OS thread.
func init() { runtime.LockOSThread() }

func main() {
	cfgPath := flag.String("config", "", "path to a YAML config file (optional)")
	watch := flag.Bool("watch", true, "reload the config file when it changes")
	logLevel := flag.String("log-level", "", "override logging.level (debug, info, warn, error)")
	flag.Parse()

	os.Exit(run(*cfgPath, *watch, *logLevel))
}

func run(cfgPath string, watch bool, logLevel string) int {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			logger.L().Error("load config", "path", cfgPath, "err", err)
			return 1
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	var updates <-chan *config.Config
	if cfgPath != "" && watch {
		w, err := config.Watch(cfgPath)
		if err != nil {
			log.Warn("config watch unavailable", "path", cfgPath, "err", err)
		} else {
			defer w.Close()
			updates = w.Updates
			go func() {
				for err := range w.Errors {
					log.Warn("config reload rejected, keeping previous settings", "err", err)
				}
			}()
		}
	}

	log.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height, "skin", cfg.Skin)
	if err := game.Run(cfg, updates); err != nil {
		log.Error("fatal", "err", err)
		return 1
	}
	return 0
}
