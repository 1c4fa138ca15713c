package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ConfigFlag string

func main() {
	rootCmd := &cobra.Command{
		Use:   "arenafile",
		Short: "Decoders and inspection tools for the Arena game data files",
	}
	rootCmd.PersistentFlags().StringVarP(&ConfigFlag, "config", "c", "", "Path to the config/data directory")

	nameCmd.Flags().IntVar(&RaceFlag, "race", 0, "Race index for the generated names (0-23)")
	nameCmd.Flags().BoolVar(&FemaleFlag, "female", false, "Generate female names")
	nameCmd.Flags().IntVar(&CountFlag, "count", 1, "How many names to generate")
	nameCmd.Flags().Int64Var(&SeedFlag, "seed", 0, "Generator seed (defaults to the current time)")

	rosterAddCmd.Flags().IntVar(&RaceFlag, "race", 0, "Race index for the new character (0-23)")
	rosterAddCmd.Flags().BoolVar(&FemaleFlag, "female", false, "Create a female character")
	rosterAddCmd.Flags().IntVar(&ClassIndexFlag, "class", 0, "Class index for the new character")
	rosterAddCmd.Flags().StringVar(&NameFlag, "name", "", "Character name (synthesized when omitted)")
	rosterAddCmd.Flags().Int64Var(&SeedFlag, "seed", 0, "Name generator seed (defaults to the current time)")
	rosterCmd.AddCommand(rosterAddCmd)
	rosterCmd.AddCommand(rosterListCmd)
	rosterCmd.AddCommand(rosterRemoveCmd)

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(rosterCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
