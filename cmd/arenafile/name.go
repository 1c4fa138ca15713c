package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mthorne/arenafile/internal/assets"
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Synthesizes character names from the name fragment tables",
	Run:   NameCommand,
}

var (
	RaceFlag   int
	FemaleFlag bool
	CountFlag  int
	SeedFlag   int64
)

// seededRandom returns the generator driving name synthesis, seeded from the
// --seed flag or the clock when the flag is unset.
func seededRandom() assets.Random {
	seed := SeedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return assets.RandomFunc(rng.Uint32)
}

func NameCommand(cmd *cobra.Command, args []string) {
	library, _ := loadLibrary()

	rng := seededRandom()
	for i := 0; i < CountFlag; i++ {
		name, err := library.GenerateName(RaceFlag, FemaleFlag, rng)
		if err != nil {
			fmt.Println("error generating name:", err)
			os.Exit(1)
		}
		fmt.Println(name)
	}
}
