package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/mthorne/arenafile/internal/assets"
	corebytes "github.com/mthorne/arenafile/internal/core/bytes"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [table]",
	Short: "Decodes one game data table and dumps it to stdout",
	Run:   DumpCommand,
	Args:  cobra.ExactArgs(1),
}

func DumpCommand(cmd *cobra.Command, args []string) {
	library, _ := loadLibrary()

	switch strings.ToLower(args[0]) {
	case "template":
		dump(library.TemplateTextTable())
	case "questions":
		dump(library.Questions())
	case "generation":
		dump(library.ClassGeneration())
	case "classes":
		dump(library.Classes())
	case "dungeons":
		dump(library.Dungeons())
	case "artifacts":
		dump(library.ArtifactTavernText1())
		dump(library.ArtifactTavernText2())
	case "trade":
		dump(library.TradeText())
	case "chunks":
		dump(library.NameChunks())
	case "spellmaker":
		dump(library.SpellMakerDescriptions())
	case "spells":
		dumpSpells(library.Spells())
	case "masks":
		dumpMasks(library.WorldMapMasks())
	case "terrain":
		dumpTerrain(library.Terrain())
	default:
		fmt.Println("unknown table:", args[0])
		fmt.Println("tables: template, questions, generation, classes, dungeons, artifacts, trade, chunks, spells, spellmaker, masks, terrain")
		os.Exit(1)
	}
}

// dump prints v in spew's format with any DOS code page bytes in the decoded
// text mapped to their Unicode equivalents.
func dump(v interface{}) {
	fmt.Print(corebytes.DecodeCP437([]byte(spew.Sdump(v))))
}

func dumpSpells(spells []assets.SpellRecord) {
	for i, spell := range spells {
		fmt.Printf("%3d  %-32s  element=%d  flags=%#04x  cost=%d\n",
			i, spell.Name(), spell.Element, spell.Flags, spell.Cost)
	}
}

func dumpMasks(masks *assets.WorldMapMasks) {
	for i, mask := range masks {
		r := mask.Rect()
		set := 0
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if mask.Get(x, y) {
					set++
				}
			}
		}
		fmt.Printf("%2d  x=%-3d y=%-3d w=%-3d h=%-3d  %d/%d pixels set\n",
			i, r.X, r.Y, r.Width, r.Height, set, r.Width*r.Height)
	}
}

func dumpTerrain(terrain *assets.WorldMapTerrain) {
	counts := make(map[assets.ClimateType]int)
	for y := 0; y < assets.TerrainHeight; y++ {
		for x := 0; x < assets.TerrainWidth; x++ {
			climate, err := assets.TerrainClimate(terrain.FailSafeAt(x, y))
			if err != nil {
				fmt.Println("error classifying terrain:", err)
				os.Exit(1)
			}
			counts[climate]++
		}
	}
	for _, climate := range []assets.ClimateType{assets.ClimateTemperate, assets.ClimateMountain, assets.ClimateDesert} {
		fmt.Printf("%-10s %6d pixels\n", climate, counts[climate])
	}
}
