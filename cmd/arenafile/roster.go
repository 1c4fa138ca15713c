package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mthorne/arenafile/internal/assets"
	"github.com/mthorne/arenafile/internal/core"
	"github.com/mthorne/arenafile/internal/roster"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manages the stored character roster",
}

var rosterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Creates a character and stores it in the roster",
	Run:   RosterAddCommand,
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the stored characters",
	Run:   RosterListCommand,
}

var rosterRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Removes a character from the roster",
	Run:   RosterRemoveCommand,
	Args:  cobra.ExactArgs(1),
}

var (
	NameFlag       string
	ClassIndexFlag int
)

// initRoster connects to the character database, returning a func which
// should be deferred for cleanup.
func initRoster(cfg *core.Config) func() {
	if err := roster.Initialize(cfg.RosterDatabasePath(), cfg.Debugging.DatabaseLoggingEnabled); err != nil {
		fmt.Println("error opening character database:", err)
		os.Exit(1)
	}
	return func() {
		if err := roster.Shutdown(); err != nil {
			fmt.Println(err)
		}
	}
}

func RosterAddCommand(cmd *cobra.Command, args []string) {
	library, cfg := loadLibrary()

	if RaceFlag < 0 || RaceFlag >= assets.NumRaces {
		fmt.Println("race index out of range:", RaceFlag)
		os.Exit(1)
	}
	if ClassIndexFlag < 0 || ClassIndexFlag >= len(library.Classes()) {
		fmt.Println("class index out of range:", ClassIndexFlag)
		os.Exit(1)
	}

	name := NameFlag
	if name == "" {
		var err error
		if name, err = library.GenerateName(RaceFlag, FemaleFlag, seededRandom()); err != nil {
			fmt.Println("error generating name:", err)
			os.Exit(1)
		}
	}

	cleanup := initRoster(cfg)
	defer cleanup()

	character := &roster.Character{
		Name:       name,
		RaceID:     RaceFlag,
		Female:     FemaleFlag,
		ClassIndex: ClassIndexFlag,
	}
	if err := roster.CreateCharacter(character); err != nil {
		fmt.Println("error creating character:", err)
		return
	}
	class := library.Classes()[character.ClassIndex]
	fmt.Printf("created %s the %s (ID: %d)\n", character.Name, class.Name, character.ID)
}

func RosterListCommand(cmd *cobra.Command, args []string) {
	library, cfg := loadLibrary()
	cleanup := initRoster(cfg)
	defer cleanup()

	characters, err := roster.ListCharacters()
	if err != nil {
		fmt.Println("error listing characters:", err)
		return
	}
	if len(characters) == 0 {
		fmt.Println("no characters in the roster")
		return
	}

	classes := library.Classes()
	for _, character := range characters {
		className := "?"
		if character.ClassIndex >= 0 && character.ClassIndex < len(classes) {
			className = classes[character.ClassIndex].Name
		}
		sex := "male"
		if character.Female {
			sex = "female"
		}
		fmt.Printf("%4d  %-28s race=%-2d %-6s %s\n",
			character.ID, character.Name, character.RaceID, sex, className)
	}
}

func RosterRemoveCommand(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Println("invalid character ID:", args[0])
		os.Exit(1)
	}

	cfg := core.LoadConfig(ConfigFlag)
	cleanup := initRoster(cfg)
	defer cleanup()

	character, err := roster.FindCharacter(id)
	if err != nil {
		fmt.Println("error finding character:", err)
		return
	}
	if character == nil {
		fmt.Printf("no character with ID %d\n", id)
		return
	}

	if err := roster.DeleteCharacter(id); err != nil {
		fmt.Println("error deleting character:", err)
		return
	}
	fmt.Printf("removed %s (ID: %d)\n", character.Name, character.ID)
}
