package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

// NewVersionsCmd creates the versions command.
func NewVersionsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List installed versions",
		Long: `List the versions present below the game directory. A version counts as
installed when its directory contains both the client jar and the
version descriptor; use --all to include incomplete ones.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVersions(all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include versions with missing files")

	return cmd
}

type installedVersion struct {
	id       string
	complete bool
}

func runVersions(all bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	versions, err := listInstalledVersions(cfg.Settings.GameDir)
	if err != nil {
		return err
	}

	shown := 0
	for _, v := range versions {
		if !v.complete && !all {
			continue
		}
		if v.complete {
			fmt.Println(v.id)
		} else {
			fmt.Printf("%s (incomplete)\n", v.id)
		}
		shown++
	}
	if shown == 0 {
		fmt.Println("No versions installed")
	}
	return nil
}

// listInstalledVersions scans the versions directory and sorts the result
// semver-first: parseable ids in descending version order, the rest
// lexically after them.
func listInstalledVersions(gameDir string) ([]installedVersion, error) {
	entries, err := os.ReadDir(fsutil.VersionsDir(gameDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read versions directory: %w", err)
	}

	var versions []installedVersion
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		versions = append(versions, installedVersion{
			id:       id,
			complete: versionComplete(gameDir, id),
		})
	}

	sort.SliceStable(versions, func(i, j int) bool {
		vi, errI := goversion.NewVersion(versions[i].id)
		vj, errJ := goversion.NewVersion(versions[j].id)
		switch {
		case errI == nil && errJ == nil:
			return vi.GreaterThan(vj)
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return versions[i].id < versions[j].id
		}
	})
	return versions, nil
}

func versionComplete(gameDir, id string) bool {
	for _, path := range []string{
		fsutil.ClientJar(gameDir, id),
		fsutil.VersionDescriptor(gameDir, id),
	} {
		if st, err := os.Stat(path); err != nil || st.IsDir() {
			return false
		}
	}
	return true
}
