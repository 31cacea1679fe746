package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/spf13/afero"
)

// Model holds the explorer's navigation state: the directory being shown and
// the entry the user last picked. NavigateUp, Enter, and Select are the only
// mutators.
type Model struct {
	fs       afero.Fs
	current  string
	selected string

	clearSelectionOnNavigate bool
}

// NewModel creates a Model rooted at start. An empty start uses the process
// working directory; relative paths are made absolute.
func NewModel(fs afero.Fs, start string) (*Model, error) {
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrFS,
				"Cannot determine current directory",
				"Pass a directory explicitly: sx <dir>")
		}
		start = cwd
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFS,
			fmt.Sprintf("Invalid start directory %s", start),
			"Pass an absolute path")
	}

	return &Model{fs: fs, current: abs}, nil
}

// SetClearSelectionOnNavigate makes directory changes drop the selection.
func (m *Model) SetClearSelectionOnNavigate(clear bool) {
	m.clearSelectionOnNavigate = clear
}

// Current returns the absolute path of the directory being shown.
func (m *Model) Current() string {
	return m.current
}

// Selected returns the selected path, if any. The path is not required to be
// inside Current.
func (m *Model) Selected() (string, bool) {
	return m.selected, m.selected != ""
}

// IsSelected reports whether path is the selected entry.
func (m *Model) IsSelected(path string) bool {
	return m.selected != "" && m.selected == path
}

// NavigateUp moves to the parent directory. Returns false at the filesystem root.
func (m *Model) NavigateUp() bool {
	parent := filepath.Dir(m.current)
	if parent == m.current {
		return false
	}
	m.setCurrent(parent)
	return true
}

// Enter descends into the child directory name. The target must be a single
// path element naming an existing directory; otherwise state is unchanged and
// an ErrFS error is returned.
func (m *Model) Enter(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.New(errors.ErrFS,
			fmt.Sprintf("Cannot enter '%s'", name),
			"Only a direct child directory can be entered")
	}

	target := filepath.Join(m.current, name)
	info, err := m.fs.Stat(target)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFS,
			fmt.Sprintf("Cannot enter '%s'", name),
			"The directory may have been moved or deleted")
	}
	if !info.IsDir() {
		return errors.New(errors.ErrFS,
			fmt.Sprintf("Cannot enter '%s': not a directory", name),
			"Only directories can be entered")
	}

	m.setCurrent(target)
	return nil
}

// Select overwrites the selected path.
func (m *Model) Select(path string) {
	m.selected = path
}

func (m *Model) setCurrent(dir string) {
	m.current = dir
	if m.clearSelectionOnNavigate {
		m.selected = ""
	}
}
