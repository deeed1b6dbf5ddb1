package manifest

import (
	"fmt"
	"path"
	"strings"

	"github.com/echo-launcher/echolauncher/pkg/errors"
)

// Coordinate is a parsed "group:artifact:version" library name.
type Coordinate struct {
	Group    string
	Artifact string
	Version  string
}

// ParseCoordinate splits a library name of the form group:artifact:version.
// Trailing segments beyond the first three (some manifests append a
// classifier to the name) are ignored.
func ParseCoordinate(name string) (Coordinate, error) {
	parts := strings.Split(name, ":")
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Coordinate{}, errors.Wrapf(errors.ErrInvalidName, "%q", name)
	}
	return Coordinate{
		Group:    parts[0],
		Artifact: parts[1],
		Version:  parts[2],
	}, nil
}

// Path returns the maven-layout relative path of the coordinate's jar,
// e.g. org/lwjgl/lwjgl/2.9.4/lwjgl-2.9.4.jar. A non-empty classifier is
// appended to the filename.
func (c Coordinate) Path(classifier string) string {
	filename := fmt.Sprintf("%s-%s.jar", c.Artifact, c.Version)
	if classifier != "" {
		filename = fmt.Sprintf("%s-%s-%s.jar", c.Artifact, c.Version, classifier)
	}
	groupPath := strings.ReplaceAll(c.Group, ".", "/")
	return path.Join(groupPath, c.Artifact, c.Version, filename)
}
