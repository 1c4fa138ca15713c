package assets

import (
	"fmt"

	corebytes "github.com/mthorne/arenafile/internal/core/bytes"
)

// ClassTablesLayout gives the offsets of the class data tables inside the
// decompressed game executable. Offsets differ between releases of the game,
// so callers working with another executable version can supply their own
// layout.
type ClassTablesLayout struct {
	Names                 int
	PreferredAttributes   int
	AllowedArmors         int
	AllowedShields        int
	AllowedShieldsLists   int
	NumShieldLists        int
	AllowedWeapons        int
	AllowedWeaponsLists   int
	NumWeaponLists        int
	ClassNumbersToIDs     int
	HealthDice            int
	InitialExperienceCaps int
	Lockpicking           int
}

// DefaultClassTablesLayout returns the table offsets for the decompressed
// floppy v1.06 executable.
func DefaultClassTablesLayout() ClassTablesLayout {
	return ClassTablesLayout{
		Names:                 0x38aa6,
		PreferredAttributes:   0x38c80,
		AllowedArmors:         0x3314e,
		AllowedShields:        0x33160,
		AllowedShieldsLists:   0x33172,
		NumShieldLists:        5,
		AllowedWeapons:        0x3318e,
		AllowedWeaponsLists:   0x331a0,
		NumWeaponLists:        7,
		ClassNumbersToIDs:     0x33220,
		HealthDice:            0x331e6,
		InitialExperienceCaps: 0x331f8,
		Lockpicking:           0x331d4,
	}
}

// ClassTables holds the raw class data tables read from the game executable.
// BuildClassDefinitions interprets them into usable class descriptions.
type ClassTables struct {
	Names                 [NumClasses]string
	PreferredAttributes   [NumClasses]string
	AllowedArmors         [NumClasses]uint8
	AllowedShieldsIndices [NumClasses]int8
	AllowedShieldsLists   [][]int
	AllowedWeaponsIndices [NumClasses]int8
	AllowedWeaponsLists   [][]int
	ClassNumbersToIDs     [NumClasses]byte
	HealthDice            [NumClasses]uint8
	InitialExperienceCaps [NumClasses]uint16
	LockpickingDivisors   [NumClasses]uint8
}

// A selector byte of 0xFF in the shield and weapon index tables means the
// class has no restriction. The tables store it as a signed -1.
const listTerminator = 0xFF

// ParseClassTables reads the class data tables out of a decompressed game
// executable image using the given layout.
func ParseClassTables(image []byte, layout ClassTablesLayout) (*ClassTables, error) {
	r := corebytes.NewReader(image)
	tables := &ClassTables{}

	if err := readCStringTable(r, layout.Names, tables.Names[:]); err != nil {
		return nil, fmt.Errorf("%w: class names: %v", ErrFormat, err)
	}
	if err := readCStringTable(r, layout.PreferredAttributes, tables.PreferredAttributes[:]); err != nil {
		return nil, fmt.Errorf("%w: preferred attributes: %v", ErrFormat, err)
	}

	if err := readByteTable(r, layout.AllowedArmors, tables.AllowedArmors[:]); err != nil {
		return nil, fmt.Errorf("%w: allowed armors: %v", ErrFormat, err)
	}

	if err := readIndexTable(r, layout.AllowedShields, tables.AllowedShieldsIndices[:]); err != nil {
		return nil, fmt.Errorf("%w: allowed shields: %v", ErrFormat, err)
	}
	shieldLists, err := readTerminatedLists(r, layout.AllowedShieldsLists, layout.NumShieldLists)
	if err != nil {
		return nil, fmt.Errorf("%w: shield lists: %v", ErrFormat, err)
	}
	tables.AllowedShieldsLists = shieldLists

	if err := readIndexTable(r, layout.AllowedWeapons, tables.AllowedWeaponsIndices[:]); err != nil {
		return nil, fmt.Errorf("%w: allowed weapons: %v", ErrFormat, err)
	}
	weaponLists, err := readTerminatedLists(r, layout.AllowedWeaponsLists, layout.NumWeaponLists)
	if err != nil {
		return nil, fmt.Errorf("%w: weapon lists: %v", ErrFormat, err)
	}
	tables.AllowedWeaponsLists = weaponLists

	if err := readByteTable(r, layout.ClassNumbersToIDs, tables.ClassNumbersToIDs[:]); err != nil {
		return nil, fmt.Errorf("%w: class numbers: %v", ErrFormat, err)
	}
	if err := readByteTable(r, layout.HealthDice, tables.HealthDice[:]); err != nil {
		return nil, fmt.Errorf("%w: health dice: %v", ErrFormat, err)
	}

	if err := r.Seek(layout.InitialExperienceCaps); err != nil {
		return nil, fmt.Errorf("%w: experience caps: %v", ErrFormat, err)
	}
	for i := range tables.InitialExperienceCaps {
		v, err := r.Uint16()
		if err != nil {
			return nil, fmt.Errorf("%w: experience caps: %v", ErrFormat, err)
		}
		tables.InitialExperienceCaps[i] = v
	}

	if err := readByteTable(r, layout.Lockpicking, tables.LockpickingDivisors[:]); err != nil {
		return nil, fmt.Errorf("%w: lockpicking divisors: %v", ErrFormat, err)
	}

	return tables, nil
}

func readCStringTable(r *corebytes.Reader, offset int, dst []string) error {
	if err := r.Seek(offset); err != nil {
		return err
	}
	for i := range dst {
		s, err := r.CString()
		if err != nil {
			return err
		}
		dst[i] = s
	}
	return nil
}

func readByteTable(r *corebytes.Reader, offset int, dst []uint8) error {
	if err := r.Seek(offset); err != nil {
		return err
	}
	b, err := r.Bytes(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

func readIndexTable(r *corebytes.Reader, offset int, dst []int8) error {
	if err := r.Seek(offset); err != nil {
		return err
	}
	for i := range dst {
		b, err := r.Byte()
		if err != nil {
			return err
		}
		dst[i] = int8(b)
	}
	return nil
}

// readTerminatedLists reads count consecutive 0xFF-terminated byte lists.
func readTerminatedLists(r *corebytes.Reader, offset, count int) ([][]int, error) {
	if err := r.Seek(offset); err != nil {
		return nil, err
	}
	lists := make([][]int, count)
	for i := range lists {
		var list []int
		for {
			b, err := r.Byte()
			if err != nil {
				return nil, err
			}
			if b == listTerminator {
				break
			}
			list = append(list, int(b))
		}
		lists[i] = list
	}
	return lists, nil
}
