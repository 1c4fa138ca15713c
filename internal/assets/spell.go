package assets

import (
	"fmt"
	"strconv"

	corebytes "github.com/mthorne/arenafile/internal/core/bytes"
)

const (
	// NumSpells is the number of records in the standard spell file.
	NumSpells = 128

	// SpellRecordSize is the packed size of one spell record.
	SpellRecordSize = 85

	// NumSpellMakerDescriptions is the number of description slots in the
	// spell maker text file.
	NumSpellMakerDescriptions = 43
)

// SpellRecord is one standard spell, laid out exactly as on disk. Fields are
// declared in wire order so the record can be decoded with StructFromBytes.
type SpellRecord struct {
	Params             [6][3]uint16
	TargetType         uint8
	Unknown            uint8
	Element            uint8
	Flags              uint16
	Effects            [3]uint8
	SubEffects         [3]uint8
	AffectedAttributes [3]uint8
	Cost               uint16
	RawName            [33]byte
}

// Name returns the spell name with its null padding removed, converted from
// the game's text encoding.
func (s *SpellRecord) Name() string {
	return corebytes.DecodeCP437(corebytes.StripPadding(s.RawName[:]))
}

// ParseStandardSpells decodes the standard spell file: 128 records of 85
// bytes each, packed back to back.
func ParseStandardSpells(data []byte) ([NumSpells]SpellRecord, error) {
	var spells [NumSpells]SpellRecord
	if len(data) < NumSpells*SpellRecordSize {
		return spells, fmt.Errorf("%w: spell file is %d bytes, want at least %d",
			ErrFormat, len(data), NumSpells*SpellRecordSize)
	}

	for i := range spells {
		record := data[i*SpellRecordSize : (i+1)*SpellRecordSize]
		corebytes.StructFromBytes(record, &spells[i])
	}
	return spells, nil
}

// ParseSpellMakerDescriptions decodes the spell maker text file. A line of
// the form "#NN" opens the description slot NN; following lines extend that
// description until the next index line. A bare "#" line ends the file and
// everything after it is ignored. Description text keeps its carriage
// returns, matching how the game renders it.
func ParseSpellMakerDescriptions(data []byte) ([NumSpellMakerDescriptions]string, error) {
	var descriptions [NumSpellMakerDescriptions]string

	index := -1
	text := ""
	flush := func() {
		if index >= 0 {
			descriptions[index] = text
		}
		index = -1
		text = ""
	}

	for _, line := range splitLines(string(data)) {
		if len(line) == 0 {
			continue
		}

		if line[0] != '#' {
			if index < 0 {
				return descriptions, fmt.Errorf("%w: spell maker text outside an indexed block", ErrFormat)
			}
			text += line
			continue
		}

		flush()

		// An index line without digits terminates the file.
		if len(line) < 3 {
			break
		}

		n, err := strconv.Atoi(line[1:3])
		if err != nil {
			return descriptions, fmt.Errorf("%w: bad spell maker index line %q", ErrFormat, line)
		}
		if n < 0 || n >= NumSpellMakerDescriptions {
			return descriptions, fmt.Errorf("%w: spell maker index %d out of range", ErrFormat, n)
		}
		index = n
	}

	// A description still open at the end of input is kept.
	flush()

	return descriptions, nil
}
