//go:build !windows

package fs

// IsHidden reports dot-files as hidden.
func IsHidden(_ string, name string) bool {
	return isDotName(name)
}

// ShouldHideFromListing never drops entries outside windows.
func ShouldHideFromListing(_, _ string) bool {
	return false
}
