package assets

import (
	"fmt"
)

// NumClasses is the number of playable character classes.
const NumClasses = 18

const numGenerationChoices = 66

// Bit layout of a packed class byte, shared by the generation table and the
// class-number-to-ID table.
const (
	classIDMask          = 0x1F
	classSpellcasterMask = 0x20
	classCriticalHitMask = 0x40
	classThiefMask       = 0x80
)

// GenerationClass is one entry of the class generation table, unpacked from
// a single byte.
type GenerationClass struct {
	ID          int
	Spellcaster bool
	CriticalHit bool
	Thief       bool
}

// GenerationChoice is one combination of quiz answer counts. The position of
// a tally within the choice table determines which class it produces.
type GenerationChoice struct {
	A, B, C int
}

// ClassGeneration maps creation quiz results to character classes.
type ClassGeneration struct {
	Classes [NumClasses]GenerationClass
	Choices [numGenerationChoices]GenerationChoice
}

// ParseClassGeneration decodes the class generation file: 18 packed class
// bytes followed by 66 three-byte answer tallies.
func ParseClassGeneration(data []byte) (*ClassGeneration, error) {
	const expected = NumClasses + numGenerationChoices*3
	if len(data) < expected {
		return nil, fmt.Errorf("%w: class generation table is %d bytes, want at least %d",
			ErrFormat, len(data), expected)
	}

	gen := &ClassGeneration{}
	for i := 0; i < NumClasses; i++ {
		gen.Classes[i] = unpackGenerationClass(data[i])
	}
	for i := 0; i < numGenerationChoices; i++ {
		off := NumClasses + i*3
		gen.Choices[i] = GenerationChoice{
			A: int(data[off]),
			B: int(data[off+1]),
			C: int(data[off+2]),
		}
	}
	return gen, nil
}

func unpackGenerationClass(value byte) GenerationClass {
	return GenerationClass{
		ID:          int(value & classIDMask),
		Spellcaster: value&classSpellcasterMask != 0,
		CriticalHit: value&classCriticalHitMask != 0,
		Thief:       value&classThiefMask != 0,
	}
}

// ClassIndex returns the index of the class produced by a finished quiz with
// the given answer tallies. The first 48 choice slots map four answers per
// class, the rest three per class.
func (g *ClassGeneration) ClassIndex(a, b, c int) (int, error) {
	for i, choice := range g.Choices {
		if choice.A == a && choice.B == b && choice.C == c {
			if i < 48 {
				return i / 4, nil
			}
			return 12 + ((i - 48) / 3), nil
		}
	}
	return 0, fmt.Errorf("no class for answer tally %d/%d/%d", a, b, c)
}

// ArmorMaterial is a material a class is allowed to wear.
type ArmorMaterial int

const (
	ArmorLeather ArmorMaterial = iota
	ArmorChain
	ArmorPlate
)

func (a ArmorMaterial) String() string {
	switch a {
	case ArmorLeather:
		return "Leather"
	case ArmorChain:
		return "Chain"
	case ArmorPlate:
		return "Plate"
	default:
		return "Unknown"
	}
}

// ShieldType is a shield a class is allowed to carry.
type ShieldType int

const (
	ShieldBuckler ShieldType = iota
	ShieldRound
	ShieldKite
	ShieldTower
)

func (s ShieldType) String() string {
	switch s {
	case ShieldBuckler:
		return "Buckler"
	case ShieldRound:
		return "Round"
	case ShieldKite:
		return "Kite"
	case ShieldTower:
		return "Tower"
	default:
		return "Unknown"
	}
}

// Shields share the armor ID space in the source tables; subtracting this
// offset yields a ShieldType.
const shieldIDOffset = 7

// NumWeapons is the size of the weapon ID space (staff through long bow).
const NumWeapons = 18

// ClassDefinition describes one playable character class.
type ClassDefinition struct {
	Name                 string
	PreferredAttributes  string
	AllowedArmors        []ArmorMaterial
	AllowedShields       []ShieldType
	AllowedWeapons       []int
	Category             ClassCategory
	Lockpicking          float64
	HealthDie            int
	InitialExperienceCap int
	ClassID              int
	Mage                 bool
	Thief                bool
	CriticalHit          bool
}

// BuildClassDefinitions assembles the playable class list from the source
// tables held in the game executable.
func BuildClassDefinitions(tables *ClassTables) ([]ClassDefinition, error) {
	defs := make([]ClassDefinition, NumClasses)
	for i := 0; i < NumClasses; i++ {
		name := tables.Names[i]

		armors, err := armorsForCode(int(tables.AllowedArmors[i]))
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", name, err)
		}

		shields, err := shieldsForIndex(int(tables.AllowedShieldsIndices[i]), tables.AllowedShieldsLists)
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", name, err)
		}

		weapons, err := weaponsForIndex(int(tables.AllowedWeaponsIndices[i]), tables.AllowedWeaponsLists)
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", name, err)
		}

		divisor := int(tables.LockpickingDivisors[i])
		if divisor == 0 {
			return nil, fmt.Errorf("class %q: %w: zero lockpicking divisor", name, ErrFormat)
		}

		packedID := tables.ClassNumbersToIDs[i]

		defs[i] = ClassDefinition{
			Name:                 name,
			PreferredAttributes:  tables.PreferredAttributes[i],
			AllowedArmors:        armors,
			AllowedShields:       shields,
			AllowedWeapons:       weapons,
			Category:             categoryForOrdinal(i),
			Lockpicking:          float64(200/divisor) / 100.0,
			HealthDie:            int(tables.HealthDice[i]),
			InitialExperienceCap: int(tables.InitialExperienceCaps[i]),
			ClassID:              int(packedID & classIDMask),
			Mage:                 packedID&classSpellcasterMask != 0,
			Thief:                packedID&classThiefMask != 0,
			CriticalHit:          packedID&classCriticalHitMask != 0,
		}
	}
	return defs, nil
}

// The class list orders the six classes of each category together.
func categoryForOrdinal(i int) ClassCategory {
	switch {
	case i < 6:
		return CategoryMage
	case i < 12:
		return CategoryThief
	default:
		return CategoryWarrior
	}
}

// armorsForCode expands the one-digit armor code into the set of allowed
// materials. Lower codes allow heavier armor.
func armorsForCode(code int) ([]ArmorMaterial, error) {
	switch code {
	case 0:
		return []ArmorMaterial{ArmorLeather, ArmorChain, ArmorPlate}, nil
	case 1:
		return []ArmorMaterial{ArmorLeather, ArmorChain}, nil
	case 2:
		return []ArmorMaterial{ArmorLeather}, nil
	case 3:
		return []ArmorMaterial{}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized armor code %d", ErrFormat, code)
	}
}

// shieldsForIndex resolves a class's shield selector. A negative index is
// the "no restriction" sentinel meaning every shield type is allowed.
func shieldsForIndex(index int, lists [][]int) ([]ShieldType, error) {
	if index < 0 {
		return []ShieldType{ShieldBuckler, ShieldRound, ShieldKite, ShieldTower}, nil
	}
	if index >= len(lists) {
		return nil, fmt.Errorf("%w: shield list index %d out of range", ErrFormat, index)
	}

	shields := make([]ShieldType, 0, len(lists[index]))
	for _, id := range lists[index] {
		st := id - shieldIDOffset
		if st < 0 || st > int(ShieldTower) {
			return nil, fmt.Errorf("%w: unrecognized shield ID %d", ErrFormat, id)
		}
		shields = append(shields, ShieldType(st))
	}
	return shields, nil
}

// weaponsForIndex resolves a class's weapon selector. A negative index is
// the "no restriction" sentinel meaning every weapon ID is allowed.
func weaponsForIndex(index int, lists [][]int) ([]int, error) {
	if index < 0 {
		all := make([]int, NumWeapons)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	if index >= len(lists) {
		return nil, fmt.Errorf("%w: weapon list index %d out of range", ErrFormat, index)
	}

	weapons := make([]int, 0, len(lists[index]))
	for _, id := range lists[index] {
		if id < 0 || id >= NumWeapons {
			return nil, fmt.Errorf("%w: unrecognized weapon ID %d", ErrFormat, id)
		}
		weapons = append(weapons, id)
	}
	return weapons, nil
}
