package resource

import (
	"errors"
	"io"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTestFile(t *testing.T, dir, name string, contents []byte) {
	t.Helper()
	if err := ioutil.WriteFile(filepath.Join(dir, name), contents, 0666); err != nil {
		t.Fatalf("error writing test file %s: %s", name, err)
	}
}

func TestDir_Open(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "TEMPLATE.DAT", []byte("#0000\r\ntext\r\n"))

	tests := []struct {
		name     string
		resource string
		want     []byte
		wantErr  error
	}{
		{
			name:     "existing file",
			resource: "TEMPLATE.DAT",
			want:     []byte("#0000\r\ntext\r\n"),
		},
		{
			name:     "missing file",
			resource: "QUESTION.TXT",
			wantErr:  ErrNotFound,
		},
		{
			name:     "wrong case is not resolved",
			resource: "template.dat",
			wantErr:  ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadAll(NewDir(dir), tt.resource)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadAll() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadAll() returned an unexpected error: %s", err)
			}
			if diff := cmp.Diff(tt.want, data); diff != "" {
				t.Errorf("contents did not match expected; diff:\n%s", diff)
			}
		})
	}
}

func TestDir_OpenCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "Spellsg.65", []byte{0x01, 0x02})

	data, err := ReadAllCaseInsensitive(NewDir(dir), "SPELLSG.65")
	if err != nil {
		t.Fatalf("ReadAllCaseInsensitive() returned an unexpected error: %s", err)
	}
	if diff := cmp.Diff([]byte{0x01, 0x02}, data); diff != "" {
		t.Errorf("contents did not match expected; diff:\n%s", diff)
	}

	if _, err := ReadAllCaseInsensitive(NewDir(dir), "SPELLS.65"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadAllCaseInsensitive() for a missing file returned %v, want ErrNotFound", err)
	}
}

func TestMem(t *testing.T) {
	src := Mem{"NAMECHNK.DAT": {0x03, 0x00, 0x00}}

	data, err := ReadAll(src, "NAMECHNK.DAT")
	if err != nil {
		t.Fatalf("ReadAll() returned an unexpected error: %s", err)
	}
	if diff := cmp.Diff([]byte{0x03, 0x00, 0x00}, data); diff != "" {
		t.Errorf("contents did not match expected; diff:\n%s", diff)
	}

	if _, err := ReadAll(src, "namechnk.dat"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadAll() with wrong case returned %v, want ErrNotFound", err)
	}

	data, err = ReadAllCaseInsensitive(src, "namechnk.dat")
	if err != nil {
		t.Fatalf("ReadAllCaseInsensitive() returned an unexpected error: %s", err)
	}
	if len(data) != 3 {
		t.Errorf("ReadAllCaseInsensitive() returned %d bytes, want 3", len(data))
	}
}

// countingSource wraps a Source and counts how many times the underlying
// resource is actually opened.
type countingSource struct {
	src   Source
	opens int
}

func (c *countingSource) Open(name string) (io.ReadCloser, error) {
	c.opens++
	return c.src.Open(name)
}

func (c *countingSource) OpenCaseInsensitive(name string) (io.ReadCloser, error) {
	c.opens++
	return c.src.OpenCaseInsensitive(name)
}

func TestCachedSource(t *testing.T) {
	counting := &countingSource{src: Mem{"CLASSES.DAT": {0xAA, 0xBB}}}
	cached := NewCachedSource(counting)

	for i := 0; i < 3; i++ {
		data, err := ReadAll(cached, "CLASSES.DAT")
		if err != nil {
			t.Fatalf("ReadAll() returned an unexpected error: %s", err)
		}
		if diff := cmp.Diff([]byte{0xAA, 0xBB}, data); diff != "" {
			t.Errorf("contents did not match expected; diff:\n%s", diff)
		}
	}
	if counting.opens != 1 {
		t.Errorf("underlying source was opened %d times, want 1", counting.opens)
	}

	// Case-insensitive lookups share one folded entry.
	for _, name := range []string{"classes.dat", "Classes.Dat"} {
		if _, err := ReadAllCaseInsensitive(cached, name); err != nil {
			t.Fatalf("ReadAllCaseInsensitive(%q) returned an unexpected error: %s", name, err)
		}
	}
	if counting.opens != 2 {
		t.Errorf("underlying source was opened %d times, want 2", counting.opens)
	}

	if _, err := ReadAll(cached, "MISSING.DAT"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadAll() for a missing file returned %v, want ErrNotFound", err)
	}
}
