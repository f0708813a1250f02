package schema

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Version is a format version as a major/minor pair, e.g. 2.1.
// Versions are totally ordered: major first, then minor.
type Version struct {
	Major uint8
	Minor uint8
}

// ParseVersion parses a version string of the form "M.m".
// Both components must be non-negative integers that fit in a byte.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, &Error{Code: "bad-version", Message: fmt.Sprintf("expected M.m, got %q", s)}
	}

	maj, err := strconv.ParseUint(major, 10, 8)
	if err != nil {
		return Version{}, &Error{Code: "bad-version", Message: fmt.Sprintf("invalid major in %q: %v", s, err)}
	}

	min, err := strconv.ParseUint(minor, 10, 8)
	if err != nil {
		return Version{}, &Error{Code: "bad-version", Message: fmt.Sprintf("invalid minor in %q: %v", s, err)}
	}

	return Version{Major: uint8(maj), Minor: uint8(min)}, nil
}

// String returns the "M.m" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Cmp returns -1, 0 or 1 comparing v against other.
func (v Version) Cmp(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}

		return 1
	}

	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}

		return 1
	}

	return 0
}

// AtLeast returns true if v >= other.
func (v Version) AtLeast(other Version) bool {
	return v.Cmp(other) >= 0
}

// UnmarshalYAML implements custom YAML unmarshaling for Version.
// Accepts a scalar of the form "2.1". A bare float scalar like 2.1 is
// also accepted since YAML parsers hand it to us as its string form.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected version scalar, got %v", node.Kind)
	}

	parsed, err := ParseVersion(node.Value)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for Version.
// Always emits the quoted "M.m" form.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}
