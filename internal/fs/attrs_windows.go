//go:build windows

package fs

import (
	"golang.org/x/sys/windows"
)

// IsHidden reports dot-files and entries carrying the hidden attribute.
func IsHidden(fullPath string, name string) bool {
	if isDotName(name) {
		return true
	}
	attrs, ok := fileAttributes(fullPath)
	return ok && attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

// ShouldHideFromListing drops protected system junctions such as
// "Documents and Settings", which are never useful to browse.
func ShouldHideFromListing(fullPath, _ string) bool {
	const protected = windows.FILE_ATTRIBUTE_SYSTEM | windows.FILE_ATTRIBUTE_REPARSE_POINT
	attrs, ok := fileAttributes(fullPath)
	return ok && attrs&protected == protected
}

func fileAttributes(path string) (uint32, bool) {
	if path == "" {
		return 0, false
	}
	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, false
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return 0, false
	}
	return attrs, true
}
