package release

import (
	_ "embed"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

//go:embed version.txt
var version string

func GetVersion() string {
	return strings.TrimSpace(version)
}

// GetSemanticVersion parses the embedded version, a malformed version.txt is a build error
func GetSemanticVersion() (*semver.Version, error) {
	parsed, err := semver.NewVersion(GetVersion())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid embedded version %q", GetVersion())
	}
	return parsed, nil
}
