package assets

import (
	"fmt"

	corebytes "github.com/mthorne/arenafile/internal/core/bytes"
)

// ArtifactsPerFile is the number of artifact dialogue blocks in each of the
// two artifact text files.
const ArtifactsPerFile = 16

// ArtifactTavernText holds the tavern dialogue for one artifact quest. Each
// situation has three interchangeable phrasings.
type ArtifactTavernText struct {
	Greetings     [3]string
	BarterSuccess [3]string
	OfferRefused  [3]string
	BarterFailure [3]string
	CounterOffers [3]string
}

// ParseArtifactText decodes one artifact text file: sixteen dialogue blocks
// of fifteen null-terminated strings each, packed back to back with no
// header or padding.
func ParseArtifactText(data []byte) ([ArtifactsPerFile]ArtifactTavernText, error) {
	var texts [ArtifactsPerFile]ArtifactTavernText
	r := corebytes.NewReader(data)

	for i := range texts {
		text := &texts[i]
		for _, group := range []*[3]string{
			&text.Greetings,
			&text.BarterSuccess,
			&text.OfferRefused,
			&text.BarterFailure,
			&text.CounterOffers,
		} {
			for j := range group {
				s, err := r.CString()
				if err != nil {
					return texts, fmt.Errorf("%w: artifact block %d truncated", ErrFormat, i)
				}
				group[j] = s
			}
		}
	}

	return texts, nil
}

// TradeCategory holds the dialogue for one kind of shop interaction: two
// behavior sets, five shopkeeper personalities each, three interchangeable
// phrasings per personality.
type TradeCategory [2][5][3]string

// ParseTradeCategory decodes one trade text file (equipment, mages guild,
// selling, or tavern) as a flat run of thirty null-terminated strings.
func ParseTradeCategory(data []byte) (TradeCategory, error) {
	var category TradeCategory
	r := corebytes.NewReader(data)

	for i := range category {
		for j := range category[i] {
			for k := range category[i][j] {
				s, err := r.CString()
				if err != nil {
					return category, fmt.Errorf("%w: trade text truncated at set %d personality %d",
						ErrFormat, i, j)
				}
				category[i][j][k] = s
			}
		}
	}

	return category, nil
}

// TradeText gathers the four trade dialogue files.
type TradeText struct {
	Equipment  TradeCategory
	MagesGuild TradeCategory
	Selling    TradeCategory
	Tavern     TradeCategory
}
