// pattern: Imperative Shell
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"panegrid/internal/config"
	"panegrid/internal/instance"
	"panegrid/internal/logging"
	"panegrid/internal/workspace"
)

var version = "dev"

func main() {
	configPath := flag.StringP("config", "c", "", "config file (default: ~/.config/panegrid/config.yaml)")
	logLevel := flag.String("log-level", "", "override the configured log level")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("panegrid", version)
		return
	}

	if *configPath == "" {
		*configPath = config.Path()
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	dataDir := config.DataDir()

	// Acquire single-instance lock: two workspaces must not rotate the
	// same log file.
	fl, err := instance.Lock(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer instance.Unlock(fl)

	logManager, err := logging.NewManager(logging.Config{
		FilePath:       filepath.Join(dataDir, "panegrid.log"),
		MaxSizeMB:      10,
		MaxBackups:     3,
		MaxAgeDays:     7,
		ChannelBufSize: 1000,
		Level:          cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Info("workspace starting", "version", version, "config", *configPath)

	model := workspace.NewModel(cfg, logManager, logManager.Entries())

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	watcher, err := config.Watch(*configPath,
		func(cfg config.Config) { p.Send(workspace.ConfigReloadedMsg{Config: cfg}) },
		func(err error) { appLogger.Warn("config reload failed", "error", err) },
	)
	if err != nil {
		appLogger.Warn("config watcher unavailable", "error", err)
	} else {
		defer func() { _ = watcher.Close() }()
	}

	if _, err := p.Run(); err != nil {
		appLogger.Error("workspace exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	appLogger.Info("workspace stopped")
}
