package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Prints a summary of the class definition tables",
	Run:   ClassesCommand,
}

func ClassesCommand(cmd *cobra.Command, args []string) {
	library, _ := loadLibrary()

	fmt.Printf("%-4s %-14s %-8s %-4s %-6s %-7s %-20s %s\n",
		"IDX", "NAME", "CATEGORY", "HP", "LOCK", "CASTER", "ARMOR", "ATTRIBUTES")
	for i, class := range library.Classes() {
		armors := make([]string, len(class.AllowedArmors))
		for j, armor := range class.AllowedArmors {
			armors[j] = armor.String()
		}
		caster := ""
		if class.Mage {
			caster = "yes"
		}
		fmt.Printf("%-4d %-14s %-8s d%-3d %-6.2f %-7s %-20s %s\n",
			i, class.Name, class.Category, class.HealthDie, class.Lockpicking,
			caster, strings.Join(armors, ","), class.PreferredAttributes)
	}
}
