package assets

import (
	"fmt"
	"strings"
)

// QuestionChoice is one of the three answers to a creation quiz question,
// with the class category the answer counts toward.
type QuestionChoice struct {
	Text     string
	Category ClassCategory
}

// CharacterQuestion is one question of the character creation quiz.
type CharacterQuestion struct {
	Description string
	A, B, C     QuestionChoice
}

type questionMode int

const (
	modeDescription questionMode = iota
	modeA
	modeB
	modeC
)

// ParseQuestions decodes the creation quiz text. The parser is a small state
// machine: a line starting with a digit begins a question's description
// (flushing the previous question if one was in progress), lines starting
// with 'a', 'b' or 'c' switch to accumulating that choice, and every line is
// appended to whichever section is current with its newline restored. The
// final question is flushed once input is exhausted.
func ParseQuestions(data []byte) ([]CharacterQuestion, error) {
	var questions []CharacterQuestion
	var description, a, b, c string
	mode := modeDescription

	flush := func() error {
		question, err := newQuestion(description, a, b, c)
		if err != nil {
			return err
		}
		questions = append(questions, question)
		description, a, b, c = "", "", "", ""
		return nil
	}

	for _, line := range splitLines(string(data)) {
		if len(line) == 0 {
			return nil, fmt.Errorf("%w: empty line in question text", ErrFormat)
		}

		switch ch := line[0]; {
		case isASCIILetter(ch):
			switch ch {
			case 'a':
				mode = modeA
			case 'b':
				mode = modeB
			case 'c':
				mode = modeC
			}
		case isASCIIDigit(ch):
			if mode != modeDescription {
				if err := flush(); err != nil {
					return nil, err
				}
				mode = modeDescription
			}
		}

		line += "\n"
		switch mode {
		case modeDescription:
			description += line
		case modeA:
			a += line
		case modeB:
			b += line
		case modeC:
			c += line
		}
	}

	// The last line of the file never triggers a flush in the loop.
	if err := flush(); err != nil {
		return nil, err
	}

	return questions, nil
}

func newQuestion(description, a, b, c string) (CharacterQuestion, error) {
	choices := [3]QuestionChoice{}
	for i, text := range []string{a, b, c} {
		category, err := choiceCategory(text)
		if err != nil {
			return CharacterQuestion{}, err
		}
		choices[i] = QuestionChoice{Text: text, Category: category}
	}
	return CharacterQuestion{
		Description: description,
		A:           choices[0],
		B:           choices[1],
		C:           choices[2],
	}, nil
}

// choiceCategory recovers the class category from the tag character embedded
// in a choice's "(5x)" marker: 'l' is Mage, 'c' is Thief, 'v' is Warrior.
func choiceCategory(choice string) (ClassCategory, error) {
	idx := strings.Index(choice, "(5")
	if idx < 0 || idx+2 >= len(choice) {
		return 0, fmt.Errorf("%w: question choice missing category tag", ErrFormat)
	}

	switch tag := choice[idx+2]; tag {
	case 'l':
		return CategoryMage, nil
	case 'c':
		return CategoryThief, nil
	case 'v':
		return CategoryWarrior, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized question category tag %q", ErrFormat, tag)
	}
}
