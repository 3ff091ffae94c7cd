package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies a directory entry. The order is the listing sort order.
type Kind int

const (
	KindFile Kind = iota
	KindSymlink
	KindDir
	KindOther
	KindDotDot
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindSymlink:
		return "symlink"
	case KindDir:
		return "dir"
	case KindDotDot:
		return "parent"
	default:
		return "other"
	}
}

// Triplet holds the read/write/execute bits of one permission class.
type Triplet struct {
	Read    bool
	Write   bool
	Execute bool
}

// Permissions are the unix permission bits of an entry.
type Permissions struct {
	User  Triplet
	Group Triplet
	Other Triplet
}

// PermissionsFromMode decodes the nine rwx bits of mode.
func PermissionsFromMode(mode os.FileMode) Permissions {
	bits := mode.Perm()
	triplet := func(shift uint) Triplet {
		return Triplet{
			Read:    bits&(0o4<<shift) != 0,
			Write:   bits&(0o2<<shift) != 0,
			Execute: bits&(0o1<<shift) != 0,
		}
	}
	return Permissions{User: triplet(6), Group: triplet(3), Other: triplet(0)}
}

// String renders the triplet as "rwx" with '-' for missing bits.
func (t Triplet) String() string {
	b := []byte("---")
	if t.Read {
		b[0] = 'r'
	}
	if t.Write {
		b[1] = 'w'
	}
	if t.Execute {
		b[2] = 'x'
	}
	return string(b)
}

// String renders all nine bits, e.g. "rwxr-x---".
func (p Permissions) String() string {
	return p.User.String() + p.Group.String() + p.Other.String()
}

// Entry represents a single file or directory on disk.
type Entry struct {
	Name     string
	FullPath string
	// Ext is the lower-cased suffix after the last dot, empty for dot-files.
	Ext  string
	Kind Kind
	// IsDir is also set for symlinks that point at a directory.
	IsDir bool
	Size  int64
	Mode  os.FileMode
	Perm  Permissions
	// Zero times mean the platform did not report them.
	Accessed time.Time
	Created  time.Time
	Modified time.Time
}

// NewEntry builds an entry for name inside dir from its lstat info.
func NewEntry(dir, name string, info os.FileInfo) Entry {
	mode := info.Mode()
	kind := KindOther
	switch {
	case mode&os.ModeSymlink != 0:
		kind = KindSymlink
	case mode.IsDir():
		kind = KindDir
	case mode.IsRegular():
		kind = KindFile
	}

	accessed, created := fileTimes(info)
	display := norm.NFC.String(name)
	return Entry{
		Name:     display,
		FullPath: filepath.Join(dir, name),
		Ext:      Extension(display),
		Kind:     kind,
		IsDir:    kind == KindDir,
		Size:     info.Size(),
		Mode:     mode,
		Perm:     PermissionsFromMode(mode),
		Accessed: accessed,
		Created:  created,
		Modified: info.ModTime(),
	}
}

// DotDot is the ".." entry leading to parent.
func DotDot(parent string) Entry {
	return Entry{Name: "..", FullPath: parent, Kind: KindDotDot, IsDir: true}
}

// Extension returns the lower-cased extension of name without the dot.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

func isDotName(name string) bool {
	return strings.HasPrefix(name, ".")
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	if e.Kind == KindDotDot {
		return false
	}
	return IsHidden(e.FullPath, e.Name)
}

// IsSymlink reports whether the entry itself is a symbolic link.
func (e Entry) IsSymlink() bool {
	return e.Kind == KindSymlink
}

// Enterable reports whether opening the entry changes directory.
func (e Entry) Enterable() bool {
	return e.IsDir || e.Kind == KindDotDot
}
