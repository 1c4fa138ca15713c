package assets

import (
	"fmt"
	"strings"
)

// DungeonEntry is one named dungeon with its multi-line description.
type DungeonEntry struct {
	Title       string
	Description string
}

// ParseDungeonText decodes the dungeon description file. Records are
// separated by '#' lines: the first line after a separator is the title and
// every line until the next separator extends the description. Description
// text keeps its interior newlines but not the one trailing the last line.
func ParseDungeonText(data []byte) ([]DungeonEntry, error) {
	var entries []DungeonEntry
	var title, description string

	flush := func() {
		description = strings.TrimSuffix(description, "\n")
		entries = append(entries, DungeonEntry{Title: title, Description: description})
		title = ""
		description = ""
	}

	for _, line := range splitLines(string(data)) {
		if len(line) == 0 {
			return nil, fmt.Errorf("%w: empty line in dungeon text", ErrFormat)
		}

		switch {
		case line[0] == '#':
			flush()
		case title == "":
			title = strings.Replace(line, "\r", "", 1)
		default:
			description += line
			description = strings.Replace(description, "\r", "\n", 1)
		}
	}

	// A title without a closing separator line still forms a record.
	if title != "" {
		flush()
	}

	return entries, nil
}
