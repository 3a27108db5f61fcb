// Package fileutil wraps the two filesystem collaborators of my-ls:
// directory enumeration and per-entry metadata resolution.
package fileutil

import (
	"fmt"
	"os"
)

// Entry type markers used in long-format output.
const (
	TypeDirectory = "d"
	TypeRegular   = "f"
	TypeOther     = "?"
)

// EntryMeta is the resolved metadata for a single directory entry.
type EntryMeta struct {
	// Type is "d" for directories, "f" for regular files, "?" for
	// anything else (symlinks, sockets, devices).
	Type string
	// Size is the entry size in bytes as reported by lstat.
	Size int64
}

// ListDirectory returns the entry names of dir in the order the
// enumeration call yields them.
func ListDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// ResolveEntry stats name relative to the working directory and derives
// its type marker and byte size. Symlinks are not followed.
func ResolveEntry(name string) (EntryMeta, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return EntryMeta{}, fmt.Errorf("failed to stat %s: %w", name, err)
	}

	meta := EntryMeta{Size: info.Size()}
	switch {
	case info.IsDir():
		meta.Type = TypeDirectory
	case info.Mode().IsRegular():
		meta.Type = TypeRegular
	default:
		meta.Type = TypeOther
	}
	return meta, nil
}
