package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/echo-launcher/echolauncher/internal/logger"
	"github.com/echo-launcher/echolauncher/pkg/assets"
	"github.com/echo-launcher/echolauncher/pkg/config"
	"github.com/echo-launcher/echolauncher/pkg/download"
	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	"github.com/echo-launcher/echolauncher/pkg/hook"
	"github.com/echo-launcher/echolauncher/pkg/library"
	"github.com/echo-launcher/echolauncher/pkg/manifest"
	"github.com/echo-launcher/echolauncher/pkg/natives"
	"github.com/echo-launcher/echolauncher/pkg/orchestrator"
	"github.com/echo-launcher/echolauncher/pkg/store"
)

// These variables are set by the main package.
var (
	ConfigPath *string
	Verbose    *bool
)

func loadConfig() (*config.Config, error) {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config path: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.LoadConfigOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	logger.InitLogger(cfg.Settings.LogLevel)
	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}
	defaultPath, err := config.DefaultConfigPath()
	if err != nil {
		logger.Warn("Failed to determine default config path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

// buildOrchestrator assembles the acquisition engine from configuration.
func buildOrchestrator(cfg *config.Config) (*orchestrator.Orchestrator, error) {
	gameDir := cfg.Settings.GameDir
	st := store.New(fsutil.ObjectsDir(gameDir))

	hookManager, err := loadHooks(cfg)
	if err != nil {
		return nil, err
	}

	return &orchestrator.Orchestrator{
		Assets:      assets.NewManager(fsutil.IndexesDir(gameDir), cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent),
		Libraries:   library.NewResolver(fsutil.LibrariesDir(gameDir)),
		DL:          download.NewManager(st, cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent),
		Extractor:   natives.NewExtractor(),
		Store:       st,
		HookManager: hookManager,
	}, nil
}

// loadHooks loads optional hook scripts from the configured directory.
// Returns nil when no hooks directory is set.
func loadHooks(cfg *config.Config) (hook.Manager, error) {
	dir := cfg.Settings.HooksDir
	if dir == "" {
		return nil, nil
	}
	m := hook.NewManager()
	for _, hookType := range []hook.Type{hook.PreFetch, hook.PostFetch} {
		path := filepath.Join(dir, hook.HookFileName(hookType))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := m.LoadHookFile(hookType, path); err != nil {
			return nil, fmt.Errorf("failed to load hook %s: %w", path, err)
		}
	}
	return m, nil
}

// resolveDescriptor loads a version descriptor from either a JSON file path
// or an installed version id below the game directory.
func resolveDescriptor(cfg *config.Config, arg string) (*manifest.VersionDescriptor, error) {
	if st, err := os.Stat(arg); err == nil && !st.IsDir() {
		return manifest.ParseDescriptorFromFile(arg)
	}
	path := fsutil.VersionDescriptor(cfg.Settings.GameDir, arg)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no descriptor file or installed version %q (looked in %s)", arg, path)
	}
	return manifest.ParseDescriptorFromFile(path)
}
