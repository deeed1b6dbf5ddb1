package cli

import (
	"fmt"
	"os"

	"github.com/echo-launcher/echolauncher/internal/logger"
	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	"github.com/echo-launcher/echolauncher/pkg/library"
	"github.com/echo-launcher/echolauncher/pkg/natives"
	"github.com/spf13/cobra"
)

// NewNativesCmd creates the natives command.
func NewNativesCmd() *cobra.Command {
	var (
		osName    string
		arch      string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "natives VERSION",
		Short: "Extract native libraries for a version",
		Long: `Extract the platform-native libraries out of a version's downloaded
classifier archives into a flat directory. Archives must already be
fetched; run fetch first. VERSION is either an installed version id or a
path to a version descriptor JSON file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNatives(cmd, args[0], osName, arch, outputDir)
		},
	}

	cmd.Flags().StringVar(&osName, "os", "", "Target OS (windows, linux, osx; default: current)")
	cmd.Flags().StringVar(&arch, "arch", "", "Target arch bits (32 or 64; default: current)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Extraction directory (default: version natives dir)")

	return cmd
}

func runNatives(cmd *cobra.Command, versionArg, osName, arch, outputDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	desc, err := resolveDescriptor(cfg, versionArg)
	if err != nil {
		return err
	}
	plat, err := targetPlatform(osName, arch)
	if err != nil {
		return err
	}
	if outputDir == "" {
		outputDir = fsutil.NativesDir(cfg.Settings.GameDir, desc.ID)
	}

	resolver := library.NewResolver(fsutil.LibrariesDir(cfg.Settings.GameDir))
	res := resolver.Resolve(desc.Libraries, plat)

	extractor := natives.NewExtractor()
	extracted, failed := 0, 0
	for _, item := range res.Downloads {
		if !item.Native {
			continue
		}
		if _, err := os.Stat(item.Dest); err != nil {
			logger.Warn("native archive not downloaded", logger.Fields{"path": item.Dest})
			failed++
			continue
		}
		if err := extractor.Extract(cmd.Context(), item.Dest, outputDir, plat); err != nil {
			logger.Error("extraction failed", logger.Fields{"archive": item.Dest, "error": err.Error()})
			failed++
			continue
		}
		extracted++
	}

	fmt.Printf("natives: %d extracted, %d failed (%s)\n", extracted, failed, outputDir)
	if failed > 0 {
		return fmt.Errorf("%d native archives failed to extract", failed)
	}
	return nil
}
