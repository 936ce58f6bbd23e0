package verctl

import "errors"

// Errors returned by this package wrap one of these sentinels; test with errors.Is.
var (
	// ErrNotFound means a manifest file does not exist.
	ErrNotFound = errors.New("manifest not found")
	// ErrParse means a manifest is not well-formed TOML.
	ErrParse = errors.New("invalid manifest")
	// ErrMissingSection means a manifest has no [package] table.
	ErrMissingSection = errors.New("missing [package] section")
	// ErrIO wraps read and write failures other than a missing file.
	ErrIO = errors.New("manifest I/O failed")
	// ErrUnsupportedLayout means the package table is written in a form
	// (inline table or root-level dotted keys) that cannot be edited in place.
	ErrUnsupportedLayout = errors.New("unsupported [package] layout")
)
