package assets

import (
	"fmt"
	"strings"
)

// ParseTemplateText decodes a blob of '#'-keyed text blocks into a map from
// key to cleaned value. A line starting with '#' opens a new key (spaces and
// line terminators are stripped from the key line); every following line is
// part of the value until the next key or the end of input. Several keys
// appear more than once in the file and the first occurrence wins.
//
// Values are cleaned so callers have less to do: carriage returns become
// newlines, runs of trailing newlines are dropped, and the single trailing
// '&' sentinel that ends most entries is removed.
func ParseTemplateText(data []byte) (map[string]string, error) {
	table := make(map[string]string)
	var key, value string

	flush := func() {
		if key == "" {
			return
		}
		if _, exists := table[key]; exists {
			return
		}
		table[key] = cleanTemplateValue(value)
	}

	for _, line := range splitLines(string(data)) {
		if len(line) == 0 {
			return nil, fmt.Errorf("%w: empty line in keyed text", ErrFormat)
		}

		if line[0] == '#' {
			flush()
			key = stripChars(line, " \r\n")
			value = ""
			continue
		}
		value += line
	}

	// The final record has no trailing key line to close it.
	flush()

	return table, nil
}

func cleanTemplateValue(value string) string {
	value = strings.ReplaceAll(value, "\r", "\n")
	value = strings.TrimRight(value, "\n")
	value = strings.TrimSuffix(value, "&")
	return value
}
