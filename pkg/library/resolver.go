// Package library turns manifest library entries into concrete downloads
// and the ordered classpath, filtered by rule evaluation for the target
// platform.
package library

import (
	"path/filepath"
	"strings"

	"github.com/echo-launcher/echolauncher/pkg/manifest"
	"github.com/echo-launcher/echolauncher/pkg/model"
	"github.com/echo-launcher/echolauncher/pkg/platform"
)

// archPlaceholder is substituted with the platform arch bits in native
// classifier templates ("natives-windows-${arch}").
const archPlaceholder = "${arch}"

// Resolution is the output of resolving a library set for one platform.
type Resolution struct {
	// Downloads is the fetch work list. Order is unspecified; the
	// scheduler parallelizes it.
	Downloads []model.ResolvedDownload
	// Classpath mirrors manifest order, filtered by rules. Absolute
	// paths below the libraries root.
	Classpath []string
	// Synthesized lists classpath entries whose path was derived from
	// the library name because the manifest declared no artifact. They
	// are reported, not verified; the caller decides how loudly to
	// warn about them.
	Synthesized []string
}

// Resolver resolves library entries against a libraries root directory.
type Resolver struct {
	librariesRoot string
}

// NewResolver creates a resolver writing below librariesRoot.
func NewResolver(librariesRoot string) *Resolver {
	return &Resolver{librariesRoot: librariesRoot}
}

// Resolve walks the entries in manifest order. Rule-denied entries
// contribute nothing. Each surviving entry yields its main artifact (one
// download plus one classpath slot) and, when the entry names a native
// classifier for this platform, one extra native-archive download that
// never joins the classpath.
func (r *Resolver) Resolve(entries []manifest.Library, plat platform.Platform) Resolution {
	var res Resolution
	for _, entry := range entries {
		if !manifest.Evaluate(entry.Rules, plat) {
			continue
		}
		r.resolveArtifact(entry, &res)
		r.resolveNative(entry, plat, &res)
	}
	return res
}

// Classpath resolves the entries and prepends the primary client jar.
func (r *Resolver) Classpath(clientJar string, entries []manifest.Library, plat platform.Platform) []string {
	res := r.Resolve(entries, plat)
	if clientJar == "" {
		return res.Classpath
	}
	return append([]string{clientJar}, res.Classpath...)
}

func (r *Resolver) resolveArtifact(entry manifest.Library, res *Resolution) {
	if entry.Downloads != nil && entry.Downloads.Artifact != nil {
		artifact := entry.Downloads.Artifact
		dest := r.destFor(artifact.Path, entry.Name, "")
		if dest == "" {
			return
		}
		res.Classpath = append(res.Classpath, dest)
		if artifact.URL == "" {
			res.Synthesized = append(res.Synthesized, dest)
			return
		}
		res.Downloads = append(res.Downloads, model.ResolvedDownload{
			Kind: model.KindLibrary,
			URL:  artifact.URL,
			Dest: dest,
			Size: artifact.Size,
		})
		return
	}

	// Legacy entry without download metadata: synthesize the maven path
	// from the name, best effort. The file is reported, not verified.
	coord, err := manifest.ParseCoordinate(entry.Name)
	if err != nil {
		return
	}
	dest := filepath.Join(r.librariesRoot, filepath.FromSlash(coord.Path("")))
	res.Classpath = append(res.Classpath, dest)
	res.Synthesized = append(res.Synthesized, dest)
}

func (r *Resolver) resolveNative(entry manifest.Library, plat platform.Platform, res *Resolution) {
	if entry.Natives == nil || entry.Downloads == nil {
		return
	}
	template, ok := entry.Natives[plat.OS]
	if !ok {
		return
	}
	classifier := strings.ReplaceAll(template, archPlaceholder, plat.Arch)
	ref, ok := entry.Downloads.Classifiers[classifier]
	if !ok {
		return
	}
	dest := r.destFor(ref.Path, entry.Name, classifier)
	if dest == "" || ref.URL == "" {
		return
	}
	res.Downloads = append(res.Downloads, model.ResolvedDownload{
		Kind:   model.KindLibrary,
		URL:    ref.URL,
		Dest:   dest,
		Size:   ref.Size,
		Native: true,
	})
}

// destFor resolves the destination path of an artifact: the manifest
// declared path when present, otherwise the maven path synthesized from
// the library name. Returns "" when neither is available.
func (r *Resolver) destFor(declaredPath, name, classifier string) string {
	relPath := declaredPath
	if relPath == "" {
		coord, err := manifest.ParseCoordinate(name)
		if err != nil {
			return ""
		}
		relPath = coord.Path(classifier)
	}
	return filepath.Join(r.librariesRoot, filepath.FromSlash(relPath))
}
