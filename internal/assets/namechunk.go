package assets

import (
	"fmt"

	corebytes "github.com/mthorne/arenafile/internal/core/bytes"
)

// nameChunkHeaderSize is the two-byte chunk length plus the one-byte string
// count that start every chunk.
const nameChunkHeaderSize = 3

// ParseNameChunks decodes the name chunk file into groups of name fragments.
// Chunks are packed back to back; each declares its own total length and the
// number of null-terminated strings that follow the header. The declared
// length governs where the next chunk starts, so a chunk may carry padding
// after its last string.
func ParseNameChunks(data []byte) ([][]string, error) {
	var chunks [][]string
	r := corebytes.NewReader(data)

	for r.Remaining() > 0 {
		start := r.Offset()

		length, err := r.Uint16()
		if err != nil {
			return nil, fmt.Errorf("%w: name chunk %d header truncated", ErrFormat, len(chunks))
		}
		count, err := r.Byte()
		if err != nil {
			return nil, fmt.Errorf("%w: name chunk %d header truncated", ErrFormat, len(chunks))
		}
		if int(length) < nameChunkHeaderSize {
			return nil, fmt.Errorf("%w: name chunk %d declares length %d", ErrFormat, len(chunks), length)
		}

		group := make([]string, count)
		for i := range group {
			s, err := r.CString()
			if err != nil {
				return nil, fmt.Errorf("%w: name chunk %d truncated", ErrFormat, len(chunks))
			}
			group[i] = s
		}
		chunks = append(chunks, group)

		// The final chunk's declared length may run past the end of the file.
		next := start + int(length)
		if next > len(data) {
			next = len(data)
		}
		if err := r.Seek(next); err != nil {
			return nil, fmt.Errorf("%w: name chunk %d declares length %d", ErrFormat, len(chunks)-1, length)
		}
	}

	return chunks, nil
}
