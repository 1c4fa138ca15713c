// The resource package defines how the game's named data files are located
// and opened. Decoders consume a Source rather than touching the filesystem
// so that the data directory, an unpacked archive held in memory, or a
// caching layer can all be swapped in without changing any parsing code.
package resource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when a Source cannot resolve a resource name.
// A missing file aborts initialization, so callers generally only match
// this to improve their error messages.
var ErrNotFound = errors.New("resource not found")

// Source resolves resource names to byte streams.
type Source interface {
	// Open resolves name exactly as given.
	Open(name string) (io.ReadCloser, error)
	// OpenCaseInsensitive resolves name ignoring case. One of the game's
	// files is shipped with different casing depending on the distribution,
	// so its lookup cannot assume an exact match.
	OpenCaseInsensitive(name string) (io.ReadCloser, error)
}

// ReadAll opens name through src and reads the entire resource into memory.
func ReadAll(src Source, name string) ([]byte, error) {
	r, err := src.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ioutil.ReadAll(r)
}

// ReadAllCaseInsensitive is ReadAll with a case-insensitive name lookup.
func ReadAllCaseInsensitive(src Source, name string) ([]byte, error) {
	r, err := src.OpenCaseInsensitive(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ioutil.ReadAll(r)
}

// Dir is a Source backed by a single directory of extracted game files.
type Dir struct {
	path string
}

func NewDir(path string) *Dir {
	return &Dir{path: path}
}

func (d *Dir) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(d.path, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return f, nil
}

func (d *Dir) OpenCaseInsensitive(name string) (io.ReadCloser, error) {
	if f, err := d.Open(name); err == nil {
		return f, nil
	}

	entries, err := ioutil.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", d.path, err)
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Name(), name) {
			return d.Open(entry.Name())
		}
	}
	return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
}

// Mem is a Source backed by a name-to-contents map generally populated from
// an unpacked archive. Lookups are case-sensitive through Open and folded
// through OpenCaseInsensitive, mirroring Dir's behavior.
type Mem map[string][]byte

func (m Mem) Open(name string) (io.ReadCloser, error) {
	data, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return ioutil.NopCloser(bytes.NewReader(data)), nil
}

func (m Mem) OpenCaseInsensitive(name string) (io.ReadCloser, error) {
	if data, ok := m[name]; ok {
		return ioutil.NopCloser(bytes.NewReader(data)), nil
	}

	// Deterministic when two keys differ only by case.
	names := make([]string, 0, len(m))
	for existing := range m {
		names = append(names, existing)
	}
	sort.Strings(names)

	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			return ioutil.NopCloser(bytes.NewReader(m[existing])), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
}
