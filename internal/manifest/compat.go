package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckRequires verifies that the running component API version satisfies
// the manifest's requires constraint (e.g. ">=1.0.0 <2.0.0"). An empty
// constraint always passes.
func CheckRequires(requires, current string) error {
	if requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(requires)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", requires, err)
	}

	version, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return fmt.Errorf("parsing API version %q: %w", current, err)
	}

	if !constraint.Check(version) {
		return fmt.Errorf("component API version %s does not satisfy %q", current, requires)
	}
	return nil
}
