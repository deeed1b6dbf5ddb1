package cli

import (
	"fmt"
	"slices"

	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	"github.com/echo-launcher/echolauncher/pkg/model"
	"github.com/echo-launcher/echolauncher/pkg/orchestrator"
	"github.com/echo-launcher/echolauncher/pkg/platform"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	var (
		concurrency int
		osName      string
		arch        string
		skipNatives bool
	)

	cmd := &cobra.Command{
		Use:   "fetch VERSION",
		Short: "Download assets, libraries and natives for a version",
		Long: `Fetch everything a version needs to run: the asset objects named by
its asset index, the library jars on its classpath, and the native
libraries for the target platform. VERSION is either an installed
version id or a path to a version descriptor JSON file.

Already present content is verified and skipped, so re-running fetch
repairs a partial download.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args[0], concurrency, osName, arch, skipNatives)
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Number of parallel downloads (0=auto)")
	cmd.Flags().StringVar(&osName, "os", "", "Target OS (windows, linux, osx; default: current)")
	cmd.Flags().StringVar(&arch, "arch", "", "Target arch bits (32 or 64; default: current)")
	cmd.Flags().BoolVar(&skipNatives, "skip-natives", false, "Skip native library extraction")

	return cmd
}

func runFetch(cmd *cobra.Command, versionArg string, concurrency int, osName, arch string, skipNatives bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if concurrency == 0 {
		concurrency = cfg.Settings.Concurrency
	}

	desc, err := resolveDescriptor(cfg, versionArg)
	if err != nil {
		return err
	}

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}
	orch.Hooks = orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
		fmt.Printf("%s: %s\n", e.Phase, e.Msg)
	}}

	plat, err := targetPlatform(osName, arch)
	if err != nil {
		return err
	}

	opts := orchestrator.Options{
		Platform:    plat,
		GameDir:     cfg.Settings.GameDir,
		Concurrency: concurrency,
		ClientJar:   fsutil.ClientJar(cfg.Settings.GameDir, desc.ID),
		OnProgress: func(r model.ItemResult) {
			if r.Err != nil {
				fmt.Printf("  failed: %s: %v\n", r.Item.URL, r.Err)
			}
		},
	}
	if !skipNatives {
		opts.NativesDir = fsutil.NativesDir(cfg.Settings.GameDir, desc.ID)
	}

	summary, err := orch.Acquire(cmd.Context(), desc, opts)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	fmt.Printf("assets: %d ok, %d failed\n", summary.Assets.Succeeded, summary.Assets.Failed)
	fmt.Printf("libraries: %d ok, %d failed\n", summary.Libraries.Succeeded, summary.Libraries.Failed)
	if !skipNatives {
		fmt.Printf("natives: %d extracted, %d failed\n", summary.NativesExtracted, summary.NativesFailed)
	}
	if failed := summary.Assets.Failed + summary.Libraries.Failed; failed > 0 {
		return fmt.Errorf("%d items failed to download", failed)
	}
	return nil
}

// targetPlatform builds the platform from flags, defaulting missing parts
// to the current host.
func targetPlatform(osName, arch string) (platform.Platform, error) {
	plat := platform.Current()
	if osName != "" {
		normalized := platform.NormalizeOS(osName)
		if !slices.Contains(platform.ValidOS(), normalized) {
			return platform.Platform{}, fmt.Errorf("unsupported os %q", osName)
		}
		plat.OS = normalized
	}
	if arch != "" {
		plat.Arch = platform.ArchBits(arch)
	}
	return plat, nil
}
