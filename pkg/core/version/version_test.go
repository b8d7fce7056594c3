package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Numx", Numx},
		{"Foundation", Foundation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "numx v"+Numx) {
		t.Errorf("String() = %q, want prefix numx v%s", s, Numx)
	}
	if !strings.Contains(s, Foundation) {
		t.Errorf("String() = %q, want foundation version %s", s, Foundation)
	}
}
