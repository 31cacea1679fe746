package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/spf13/afero"
)

// Kind distinguishes directories from everything else.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry is one immediate child of a directory. Entries are rebuilt on every
// listing and never cached.
type Entry struct {
	Name string
	Path string
	Kind Kind
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// SortOrder controls how a listing is ordered.
type SortOrder int

const (
	// SortDirsFirst lists directories before files, each group by name.
	SortDirsFirst SortOrder = iota
	// SortName orders by name only.
	SortName
	// SortNone keeps whatever order the filesystem returned.
	SortNone
)

// String returns the config spelling of the order.
func (s SortOrder) String() string {
	switch s {
	case SortName:
		return "name"
	case SortNone:
		return "none"
	default:
		return "dirs_first"
	}
}

// ParseSortOrder converts a config value to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", "dirs_first":
		return SortDirsFirst, nil
	case "name":
		return SortName, nil
	case "none":
		return SortNone, nil
	default:
		return SortDirsFirst, fmt.Errorf("unknown sort order %q", s)
	}
}

// Lister enumerates directories.
type Lister struct {
	fs    afero.Fs
	order SortOrder
}

// NewLister creates a Lister over fs using the given order.
func NewLister(fs afero.Fs, order SortOrder) *Lister {
	return &Lister{fs: fs, order: order}
}

// Order returns the configured sort order.
func (l *Lister) Order() SortOrder {
	return l.order
}

// List returns the immediate children of dir. Hidden files are included.
// A missing or unreadable directory yields an ErrFS error and no entries.
func (l *Lister) List(dir string) ([]Entry, error) {
	f, err := l.fs.Open(dir)
	if err != nil {
		return nil, readError(dir, err)
	}
	defer f.Close()

	infos, err := f.Readdir(-1)
	if err != nil {
		return nil, readError(dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		entries = append(entries, Entry{
			Name: info.Name(),
			Path: path,
			Kind: l.kindOf(path, info),
		})
	}

	sortEntries(entries, l.order)
	return entries, nil
}

// kindOf classifies info, following symlinks to their target.
func (l *Lister) kindOf(path string, info os.FileInfo) Kind {
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := l.fs.Stat(path)
		if err != nil {
			return KindFile
		}
		info = target
	}
	if info.IsDir() {
		return KindDirectory
	}
	return KindFile
}

func readError(dir string, err error) error {
	e := errors.Wrap(err, fmt.Sprintf("Cannot read directory %s", dir))
	e.Suggestion = "Go up a level to pick another directory"
	return e
}

func sortEntries(entries []Entry, order SortOrder) {
	if order == SortNone {
		return
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if order == SortDirsFirst && a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		al, bl := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if al != bl {
			return al < bl
		}
		return a.Name < b.Name
	})
}
