package assets

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mthorne/arenafile/internal/resource"
)

// Game data file names bound at load time. SPELLSG.65 is opened
// case-insensitively because its casing differs between releases.
const (
	templateFilename   = "TEMPLATE.DAT"
	questionFilename   = "QUESTION.TXT"
	classesFilename    = "CLASSES.DAT"
	dungeonFilename    = "DUNGEON.TXT"
	artifact1Filename  = "ARTFACT1.DAT"
	artifact2Filename  = "ARTFACT2.DAT"
	equipmentFilename  = "EQUIP.DAT"
	magesGuildFilename = "MUGUILD.DAT"
	sellingFilename    = "SELLING.DAT"
	tavernFilename     = "TAVERN.DAT"
	nameChunkFilename  = "NAMECHNK.DAT"
	spellsFilename     = "SPELLSG.65"
	spellMakerFilename = "SPELLMKR.TXT"
	worldMapFilename   = "TAMRIEL.MNU"
	terrainFilename    = "TERRAIN.IMG"
)

// Loader decodes the full game data set from a Source into a Library.
type Loader struct {
	// Source supplies the game data files by name.
	Source resource.Source

	// ClassTables supplies pre-extracted class source tables. When nil, the
	// loader extracts them from ExeImage instead.
	ClassTables *ClassTables

	// ExeImage is the decompressed game executable, consulted only when
	// ClassTables is nil.
	ExeImage []byte

	// Layout overrides the executable table offsets. Nil selects the
	// default layout.
	Layout *ClassTablesLayout

	Logger *logrus.Logger
}

// Library is the decoded game data set. It is populated once by Loader.Load
// and read-only afterward, so it can be shared between goroutines freely.
type Library struct {
	templateText map[string]string
	questions    []CharacterQuestion
	classGen     *ClassGeneration
	classes      []ClassDefinition
	dungeons     []DungeonEntry
	artifacts1   [ArtifactsPerFile]ArtifactTavernText
	artifacts2   [ArtifactsPerFile]ArtifactTavernText
	trade        TradeText
	nameChunks   [][]string
	spells       [NumSpells]SpellRecord
	spellMaker   [NumSpellMakerDescriptions]string
	masks        WorldMapMasks
	terrain      *WorldMapTerrain
}

// Load reads and decodes every game data file. Any missing or malformed file
// aborts the whole load; there is no partial success.
func (l *Loader) Load() (*Library, error) {
	log := l.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if l.Source == nil {
		return nil, errors.New("no game data source")
	}

	lib := &Library{}

	tables := l.ClassTables
	if tables == nil {
		if len(l.ExeImage) == 0 {
			return nil, errors.New("no class tables and no executable image to extract them from")
		}
		layout := DefaultClassTablesLayout()
		if l.Layout != nil {
			layout = *l.Layout
		}
		t, err := ParseClassTables(l.ExeImage, layout)
		if err != nil {
			return nil, fmt.Errorf("executable class tables: %w", err)
		}
		tables = t
		log.Debugf("extracted class tables from executable image (%d bytes)", len(l.ExeImage))
	}

	data, err := l.read(log, templateFilename)
	if err != nil {
		return nil, err
	}
	if lib.templateText, err = ParseTemplateText(data); err != nil {
		return nil, fmt.Errorf("%s: %w", templateFilename, err)
	}

	if data, err = l.read(log, questionFilename); err != nil {
		return nil, err
	}
	if lib.questions, err = ParseQuestions(data); err != nil {
		return nil, fmt.Errorf("%s: %w", questionFilename, err)
	}

	if data, err = l.read(log, classesFilename); err != nil {
		return nil, err
	}
	if lib.classGen, err = ParseClassGeneration(data); err != nil {
		return nil, fmt.Errorf("%s: %w", classesFilename, err)
	}
	if lib.classes, err = BuildClassDefinitions(tables); err != nil {
		return nil, fmt.Errorf("class definitions: %w", err)
	}

	if data, err = l.read(log, dungeonFilename); err != nil {
		return nil, err
	}
	if lib.dungeons, err = ParseDungeonText(data); err != nil {
		return nil, fmt.Errorf("%s: %w", dungeonFilename, err)
	}

	if data, err = l.read(log, artifact1Filename); err != nil {
		return nil, err
	}
	if lib.artifacts1, err = ParseArtifactText(data); err != nil {
		return nil, fmt.Errorf("%s: %w", artifact1Filename, err)
	}
	if data, err = l.read(log, artifact2Filename); err != nil {
		return nil, err
	}
	if lib.artifacts2, err = ParseArtifactText(data); err != nil {
		return nil, fmt.Errorf("%s: %w", artifact2Filename, err)
	}

	tradeFiles := []struct {
		name string
		dst  *TradeCategory
	}{
		{equipmentFilename, &lib.trade.Equipment},
		{magesGuildFilename, &lib.trade.MagesGuild},
		{sellingFilename, &lib.trade.Selling},
		{tavernFilename, &lib.trade.Tavern},
	}
	for _, tf := range tradeFiles {
		if data, err = l.read(log, tf.name); err != nil {
			return nil, err
		}
		if *tf.dst, err = ParseTradeCategory(data); err != nil {
			return nil, fmt.Errorf("%s: %w", tf.name, err)
		}
	}

	if data, err = l.read(log, nameChunkFilename); err != nil {
		return nil, err
	}
	if lib.nameChunks, err = ParseNameChunks(data); err != nil {
		return nil, fmt.Errorf("%s: %w", nameChunkFilename, err)
	}

	if data, err = resource.ReadAllCaseInsensitive(l.Source, spellsFilename); err != nil {
		return nil, fmt.Errorf("%s: %w", spellsFilename, err)
	}
	log.Debugf("read %s (%d bytes)", spellsFilename, len(data))
	if lib.spells, err = ParseStandardSpells(data); err != nil {
		return nil, fmt.Errorf("%s: %w", spellsFilename, err)
	}

	if data, err = l.read(log, spellMakerFilename); err != nil {
		return nil, err
	}
	if lib.spellMaker, err = ParseSpellMakerDescriptions(data); err != nil {
		return nil, fmt.Errorf("%s: %w", spellMakerFilename, err)
	}

	if data, err = l.read(log, worldMapFilename); err != nil {
		return nil, err
	}
	if lib.masks, err = ParseWorldMapMasks(data); err != nil {
		return nil, fmt.Errorf("%s: %w", worldMapFilename, err)
	}

	if data, err = l.read(log, terrainFilename); err != nil {
		return nil, err
	}
	if lib.terrain, err = ParseWorldMapTerrain(data); err != nil {
		return nil, fmt.Errorf("%s: %w", terrainFilename, err)
	}

	log.Infof("game data loaded: %d classes, %d questions, %d dungeons, %d name chunks, %d spells",
		len(lib.classes), len(lib.questions), len(lib.dungeons), len(lib.nameChunks), len(lib.spells))

	return lib, nil
}

func (l *Loader) read(log *logrus.Logger, name string) ([]byte, error) {
	data, err := resource.ReadAll(l.Source, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Debugf("read %s (%d bytes)", name, len(data))
	return data, nil
}

// TemplateText returns the cleaned text block stored under the given key,
// including its '#' prefix.
func (l *Library) TemplateText(key string) (string, error) {
	value, ok := l.templateText[key]
	if !ok {
		return "", fmt.Errorf("template text key %q not found", key)
	}
	return value, nil
}

// TemplateTextTable returns the whole keyed text table.
func (l *Library) TemplateTextTable() map[string]string {
	return l.templateText
}

// Questions returns the character creation quiz in file order.
func (l *Library) Questions() []CharacterQuestion {
	return l.questions
}

// ClassGeneration returns the quiz-to-class mapping tables.
func (l *Library) ClassGeneration() *ClassGeneration {
	return l.classGen
}

// Classes returns the playable class definitions in class index order.
func (l *Library) Classes() []ClassDefinition {
	return l.classes
}

// Dungeons returns the named dungeon descriptions in file order.
func (l *Library) Dungeons() []DungeonEntry {
	return l.dungeons
}

// ArtifactTavernText1 returns the first artifact dialogue table.
func (l *Library) ArtifactTavernText1() [ArtifactsPerFile]ArtifactTavernText {
	return l.artifacts1
}

// ArtifactTavernText2 returns the second artifact dialogue table.
func (l *Library) ArtifactTavernText2() [ArtifactsPerFile]ArtifactTavernText {
	return l.artifacts2
}

// TradeText returns the four shop dialogue tables.
func (l *Library) TradeText() TradeText {
	return l.trade
}

// NameChunks returns the raw name fragment groups.
func (l *Library) NameChunks() [][]string {
	return l.nameChunks
}

// Spells returns the 128 standard spell records.
func (l *Library) Spells() []SpellRecord {
	return l.spells[:]
}

// SpellMakerDescriptions returns all spell maker description slots.
func (l *Library) SpellMakerDescriptions() []string {
	return l.spellMaker[:]
}

// SpellMakerDescription returns the description in slot n.
func (l *Library) SpellMakerDescription(n int) (string, error) {
	if n < 0 || n >= NumSpellMakerDescriptions {
		return "", fmt.Errorf("spell maker slot %d out of range", n)
	}
	return l.spellMaker[n], nil
}

// WorldMapMasks returns the world map hit-test masks.
func (l *Library) WorldMapMasks() *WorldMapMasks {
	return &l.masks
}

// Terrain returns the world map terrain.
func (l *Library) Terrain() *WorldMapTerrain {
	return l.terrain
}

// GenerateName synthesizes an NPC name for the given race and gender using
// the caller's random source. Names for the same seed are reproducible.
func (l *Library) GenerateName(raceID int, female bool, rng Random) (string, error) {
	if raceID < 0 || raceID >= NumRaces {
		return "", fmt.Errorf("race ID %d out of range", raceID)
	}
	slot := raceID * 2
	if female {
		slot++
	}
	return synthesizeName(nameRules[slot], l.nameChunks, rng)
}
