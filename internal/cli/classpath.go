package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/echo-launcher/echolauncher/internal/logger"
	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	"github.com/echo-launcher/echolauncher/pkg/library"
	"github.com/spf13/cobra"
)

// NewClasspathCmd creates the classpath command.
func NewClasspathCmd() *cobra.Command {
	var (
		osName    string
		arch      string
		separator string
	)

	cmd := &cobra.Command{
		Use:   "classpath VERSION",
		Short: "Print the launch classpath for a version",
		Long: `Resolve the library set of a version for the target platform and print
the resulting classpath, client jar first, in manifest order. VERSION is
either an installed version id or a path to a version descriptor JSON
file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runClasspath(args[0], osName, arch, separator)
		},
	}

	cmd.Flags().StringVar(&osName, "os", "", "Target OS (windows, linux, osx; default: current)")
	cmd.Flags().StringVar(&arch, "arch", "", "Target arch bits (32 or 64; default: current)")
	cmd.Flags().StringVar(&separator, "separator", "", "Entry separator (default: platform path list separator)")

	return cmd
}

func runClasspath(versionArg, osName, arch, separator string) error {
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
	if separator == "" {
		separator = string(os.PathListSeparator)
	}

	resolver := library.NewResolver(fsutil.LibrariesDir(cfg.Settings.GameDir))
	res := resolver.Resolve(desc.Libraries, plat)
	for _, path := range res.Synthesized {
		logger.Warn("classpath entry synthesized from name, not verified", logger.Fields{"path": path})
	}

	clientJar := fsutil.ClientJar(cfg.Settings.GameDir, desc.ID)
	entries := append([]string{clientJar}, res.Classpath...)
	fmt.Println(strings.Join(entries, separator))
	return nil
}
