package verctl

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultVersion is written into manifests that declare no package version.
const DefaultVersion = "0.1.0"

// BumpKind selects which component of a version is incremented.
type BumpKind int

const (
	BumpPatch BumpKind = iota
	BumpMinor
	BumpMajor
	BumpNone
)

func (k BumpKind) String() string {
	switch k {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	case BumpNone:
		return "none"
	}
	return fmt.Sprintf("BumpKind(%d)", int(k))
}

// ParseBumpKind parses a --bump argument. Unlike prompt answers, unknown
// values are rejected.
func ParseBumpKind(s string) (BumpKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return BumpMajor, nil
	case "minor":
		return BumpMinor, nil
	case "patch":
		return BumpPatch, nil
	case "none":
		return BumpNone, nil
	}
	return BumpPatch, fmt.Errorf("unknown bump argument: %s (must be major, minor, patch, or none)", s)
}

// BumpKindFromAnswer maps an interactive answer to a bump kind.
// Anything that is not major, minor, or none (including an empty line) means patch.
func BumpKindFromAnswer(answer string) BumpKind {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "major":
		return BumpMajor
	case "minor":
		return BumpMinor
	case "none":
		return BumpNone
	default:
		return BumpPatch
	}
}

// Version is a dotted numeric version with exactly three components.
type Version struct {
	Major, Minor, Patch uint64
}

// ParseVersion splits s on "." and reads each segment as an unsigned integer.
// It never fails: missing or non-numeric segments become 0, and segments past
// the third are ignored.
func ParseVersion(s string) Version {
	var parts [3]uint64
	for i, seg := range strings.Split(s, ".") {
		if i >= len(parts) {
			break
		}
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			n = 0
		}
		parts[i] = n
	}
	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}
}

// Bump returns v incremented according to kind. Lower-order components are
// reset to zero.
func (v Version) Bump(kind BumpKind) Version {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
	return v
}

// String formats v as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// bumpVersion parses current, bumps it, and formats the result.
func bumpVersion(current string, kind BumpKind) string {
	return ParseVersion(current).Bump(kind).String()
}
