package assets

import (
	"fmt"
	"strings"
)

// NumRaces is the number of races with name rule slots, counting the
// non-playable ones.
const NumRaces = 24

type nameRuleKind int

const (
	ruleChunk nameRuleKind = iota
	ruleLiteral
	ruleChunkChance
	ruleChunkLiteralChance
)

// nameRule is one step of a name recipe: append a drawn chunk, a literal, or
// conditionally one of those based on a percentage roll.
type nameRule struct {
	kind    nameRuleKind
	chunk   int
	literal string
	chance  int
}

func ref(chunk int) nameRule {
	return nameRule{kind: ruleChunk, chunk: chunk}
}

func lit(s string) nameRule {
	return nameRule{kind: ruleLiteral, literal: s}
}

func refChance(chunk, chance int) nameRule {
	return nameRule{kind: ruleChunkChance, chunk: chunk, chance: chance}
}

func refLitChance(chunk int, s string, chance int) nameRule {
	return nameRule{kind: ruleChunkLiteralChance, chunk: chunk, literal: s, chance: chance}
}

// nameRules maps each race and gender to its name recipe. Slots come in
// pairs: male at raceID*2, female right after.
var nameRules = [NumRaces * 2][]nameRule{
	// Race 0.
	{ref(0), ref(1), lit(" "), ref(4), ref(5)},
	{ref(2), ref(3), lit(" "), ref(4), ref(5)},

	// Race 1.
	{ref(6), ref(7), ref(8), refChance(9, 75)},
	{ref(6), ref(7), ref(8), refChance(9, 75), ref(10)},

	// Race 2.
	{ref(11), ref(12), lit(" "), ref(15), ref(16), lit("sen")},
	{ref(13), ref(14), lit(" "), ref(15), ref(16), lit("sen")},

	// Race 3.
	{ref(17), ref(18), lit(" "), ref(21), ref(22)},
	{ref(19), ref(20), lit(" "), ref(21), ref(22)},

	// Race 4.
	{ref(23), ref(24), lit(" "), ref(27), ref(28)},
	{ref(25), ref(26), lit(" "), ref(27), ref(28)},

	// Race 5.
	{ref(29), ref(30), lit(" "), ref(33), ref(34)},
	{ref(31), ref(32), lit(" "), ref(33), ref(34)},

	// Race 6.
	{ref(35), ref(36), lit(" "), ref(39), ref(40)},
	{ref(37), ref(38), lit(" "), ref(39), ref(40)},

	// Race 7.
	{ref(41), ref(42), lit(" "), ref(45), ref(46)},
	{ref(43), ref(44), lit(" "), ref(45), ref(46)},

	// Race 8.
	{ref(47), refChance(48, 75), ref(49)},
	{ref(47), refChance(48, 75), ref(49)},

	// Race 9.
	{ref(47), refChance(48, 75), ref(49)},
	{ref(47), refChance(48, 75), ref(49)},

	// Race 10.
	{ref(47), refChance(48, 75), ref(49)},
	{ref(47), refChance(48, 75), ref(49)},

	// Race 11.
	{ref(47), refChance(48, 75), ref(49)},
	{ref(47), refChance(48, 75), ref(49)},

	// Race 12.
	{ref(47), refChance(48, 75), ref(49)},
	{ref(47), refChance(48, 75), ref(49)},

	// Race 13.
	{ref(47), refChance(48, 75), ref(49)},
	{ref(47), refChance(48, 75), ref(49)},

	// Race 14.
	{ref(47), refChance(48, 75), ref(49)},
	{ref(47), refChance(48, 75), ref(49)},

	// Race 15.
	{ref(47), refChance(48, 75), ref(49)},
	{ref(47), refChance(48, 75), ref(49)},

	// Race 16.
	{ref(47), refChance(48, 75), ref(49)},
	{ref(47), refChance(48, 75), ref(49)},

	// Race 17.
	{ref(50), refChance(51, 75), ref(52)},
	{ref(50), refChance(51, 75), ref(52)},

	// Race 18.
	{ref(50), refChance(51, 75), ref(52)},
	{ref(50), refChance(51, 75), ref(52)},

	// Race 19.
	{ref(50), refChance(51, 75), ref(52)},
	{ref(50), refChance(51, 75), ref(52)},

	// Race 20.
	{ref(50), refChance(51, 75), ref(52)},
	{ref(50), refChance(51, 75), ref(52)},

	// Race 21.
	{ref(50), ref(52), ref(53)},
	{ref(50), ref(52), ref(53)},

	// Race 22.
	{refLitChance(54, " ", 25), ref(55), ref(56), ref(57)},
	{refLitChance(54, " ", 25), ref(55), ref(56), ref(57)},

	// Race 23.
	{ref(55), ref(56), ref(57)},
	{ref(55), ref(56), ref(57)},
}

// synthesizeName runs one name recipe against the chunk table. Chance rules
// look their chunk group up before rolling, so a bad chunk reference fails
// even when the roll would have skipped it. The roll passes on values less
// than or equal to the rule's chance, and only a passing roll consumes a
// second draw for the chunk pick.
func synthesizeName(rules []nameRule, chunks [][]string, rng Random) (string, error) {
	var name strings.Builder

	for _, rule := range rules {
		switch rule.kind {
		case ruleLiteral:
			name.WriteString(rule.literal)

		case ruleChunk, ruleChunkChance, ruleChunkLiteralChance:
			group, err := chunkGroup(chunks, rule.chunk)
			if err != nil {
				return "", err
			}

			if rule.kind != ruleChunk {
				if int(rng.Next()%100) > rule.chance {
					continue
				}
			}

			name.WriteString(group[rng.Next()%uint32(len(group))])
			if rule.kind == ruleChunkLiteralChance {
				name.WriteString(rule.literal)
			}

		default:
			panic(fmt.Sprintf("unhandled name rule kind %d", rule.kind))
		}
	}

	return name.String(), nil
}

func chunkGroup(chunks [][]string, id int) ([]string, error) {
	if id < 0 || id >= len(chunks) {
		return nil, fmt.Errorf("name chunk %d not loaded", id)
	}
	group := chunks[id]
	if len(group) == 0 {
		return nil, fmt.Errorf("name chunk %d is empty", id)
	}
	return group, nil
}
