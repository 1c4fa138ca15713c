package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildSpellFile() []byte {
	data := make([]byte, NumSpells*SpellRecordSize)

	// Give slot 5 a recognizable pattern at every field offset.
	rec := data[5*SpellRecordSize:]
	binary.LittleEndian.PutUint16(rec[0:], 111)
	binary.LittleEndian.PutUint16(rec[4:], 222)
	binary.LittleEndian.PutUint16(rec[30:], 333)
	rec[36] = 7
	rec[37] = 9
	rec[38] = 3
	binary.LittleEndian.PutUint16(rec[39:], 0x8001)
	rec[41], rec[42], rec[43] = 1, 2, 3
	rec[44], rec[45], rec[46] = 4, 5, 6
	rec[47], rec[48], rec[49] = 7, 8, 9
	binary.LittleEndian.PutUint16(rec[50:], 450)
	copy(rec[52:], "Fireball")

	return data
}

func TestParseStandardSpells(t *testing.T) {
	spells, err := ParseStandardSpells(buildSpellFile())
	if err != nil {
		t.Fatalf("ParseStandardSpells() returned error: %v", err)
	}

	spell := spells[5]
	if got := spell.Params[0][0]; got != 111 {
		t.Errorf("Params[0][0] = %d, want 111", got)
	}
	if got := spell.Params[0][2]; got != 222 {
		t.Errorf("Params[0][2] = %d, want 222", got)
	}
	if got := spell.Params[5][0]; got != 333 {
		t.Errorf("Params[5][0] = %d, want 333", got)
	}
	if spell.TargetType != 7 || spell.Unknown != 9 || spell.Element != 3 {
		t.Errorf("target/unknown/element = %d/%d/%d, want 7/9/3",
			spell.TargetType, spell.Unknown, spell.Element)
	}
	if got := spell.Flags; got != 0x8001 {
		t.Errorf("Flags = %#x, want 0x8001", got)
	}
	if diff := cmp.Diff([3]uint8{1, 2, 3}, spell.Effects); diff != "" {
		t.Errorf("Effects; diff:\n%s", diff)
	}
	if diff := cmp.Diff([3]uint8{4, 5, 6}, spell.SubEffects); diff != "" {
		t.Errorf("SubEffects; diff:\n%s", diff)
	}
	if diff := cmp.Diff([3]uint8{7, 8, 9}, spell.AffectedAttributes); diff != "" {
		t.Errorf("AffectedAttributes; diff:\n%s", diff)
	}
	if got := spell.Cost; got != 450 {
		t.Errorf("Cost = %d, want 450", got)
	}
	if got := spell.Name(); got != "Fireball" {
		t.Errorf("Name() = %q, want %q", got, "Fireball")
	}

	// The pattern must not leak into the neighboring records.
	if got := spells[4].Cost; got != 0 {
		t.Errorf("slot 4 Cost = %d, want 0", got)
	}
	if got := spells[6].Params[0][0]; got != 0 {
		t.Errorf("slot 6 Params[0][0] = %d, want 0", got)
	}
}

func TestParseStandardSpells_Short(t *testing.T) {
	data := buildSpellFile()
	if _, err := ParseStandardSpells(data[:len(data)-1]); !errors.Is(err, ErrFormat) {
		t.Errorf("ParseStandardSpells() error = %v, want ErrFormat", err)
	}
}

func TestParseSpellMakerDescriptions(t *testing.T) {
	data := "#01\r\n" +
		"First line.\r\n" +
		"Second line.\r\n" +
		"#40\r\n" +
		"\n" +
		"Later slot.\r\n" +
		"#\r\n" +
		"ignored tail\r\n" +
		"#05\r\n" +
		"never reached\r\n"

	descriptions, err := ParseSpellMakerDescriptions([]byte(data))
	if err != nil {
		t.Fatalf("ParseSpellMakerDescriptions() returned error: %v", err)
	}

	if got, want := descriptions[1], "First line.\rSecond line.\r"; got != want {
		t.Errorf("slot 1 = %q, want %q", got, want)
	}
	if got, want := descriptions[40], "Later slot.\r"; got != want {
		t.Errorf("slot 40 = %q, want %q", got, want)
	}
	if got := descriptions[5]; got != "" {
		t.Errorf("slot 5 = %q, want empty: text after the bare # must be ignored", got)
	}
}

func TestParseSpellMakerDescriptions_FlushAtEOF(t *testing.T) {
	descriptions, err := ParseSpellMakerDescriptions([]byte("#02\r\nTail text\r\n"))
	if err != nil {
		t.Fatalf("ParseSpellMakerDescriptions() returned error: %v", err)
	}
	if got, want := descriptions[2], "Tail text\r"; got != want {
		t.Errorf("slot 2 = %q, want %q", got, want)
	}
}

func TestParseSpellMakerDescriptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"non-numeric index", "#xy\r\ntext\r\n"},
		{"index out of range", "#99\r\ntext\r\n"},
		{"text before first index", "stray text\r\n#01\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSpellMakerDescriptions([]byte(tt.data)); !errors.Is(err, ErrFormat) {
				t.Errorf("ParseSpellMakerDescriptions() error = %v, want ErrFormat", err)
			}
		})
	}
}
