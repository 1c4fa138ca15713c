package assets

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQuestions(t *testing.T) {
	data := "1. Trapped in a dark alley, three\r\n" +
		"figures block your escape.\r\n" +
		"a. Draw your weapon (5v)\r\n" +
		"then stand your ground\r\n" +
		"b. Mutter the words (5l)\r\n" +
		"c. Slip into the shadows (5c)\r\n" +
		"2. A merchant offers you\r\n" +
		"100 gold pieces.\r\n" +
		"a. Take the coin (5c)\r\n" +
		"b. Refuse politely (5v)\r\n" +
		"c. Study his motive (5l)\r\n"

	questions, err := ParseQuestions([]byte(data))
	if err != nil {
		t.Fatalf("ParseQuestions() returned error: %v", err)
	}

	want := []CharacterQuestion{
		{
			Description: "1. Trapped in a dark alley, three\r\nfigures block your escape.\r\n",
			A:           QuestionChoice{Text: "a. Draw your weapon (5v)\r\nthen stand your ground\r\n", Category: CategoryWarrior},
			B:           QuestionChoice{Text: "b. Mutter the words (5l)\r\n", Category: CategoryMage},
			C:           QuestionChoice{Text: "c. Slip into the shadows (5c)\r\n", Category: CategoryThief},
		},
		{
			Description: "2. A merchant offers you\r\n100 gold pieces.\r\n",
			A:           QuestionChoice{Text: "a. Take the coin (5c)\r\n", Category: CategoryThief},
			B:           QuestionChoice{Text: "b. Refuse politely (5v)\r\n", Category: CategoryWarrior},
			C:           QuestionChoice{Text: "c. Study his motive (5l)\r\n", Category: CategoryMage},
		},
	}
	if diff := cmp.Diff(want, questions); diff != "" {
		t.Errorf("ParseQuestions() produced the wrong questions; diff:\n%s", diff)
	}
}

func TestParseQuestions_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing category tag",
			data: "1. Question one.\r\n" +
				"a. No marker in this choice\r\n" +
				"b. Fine choice (5l)\r\n" +
				"c. Fine choice (5c)\r\n",
		},
		{
			name: "unrecognized category tag",
			data: "1. Question one.\r\n" +
				"a. Tagged wrong (5x)\r\n" +
				"b. Fine choice (5l)\r\n" +
				"c. Fine choice (5c)\r\n",
		},
		{
			name: "tag at end of text",
			data: "1. Question one.\r\n" +
				"a. Truncated marker (5",
		},
		{
			name: "empty line",
			data: "1. Question one.\r\n\na. Choice (5l)\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseQuestions([]byte(tt.data)); !errors.Is(err, ErrFormat) {
				t.Errorf("ParseQuestions() error = %v, want ErrFormat", err)
			}
		})
	}
}
