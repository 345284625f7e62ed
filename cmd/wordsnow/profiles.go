package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List difficulty profiles",
	Long: `Shows the difficulty profiles from the active game config.
Use one with 'wordsnow play --difficulty <name>' or cycle them in game with D.`,
	Args: cobra.NoArgs,
	Run:  runProfiles,
}

func runProfiles(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-8s  %-8s  %7s  %5s  %8s  %8s\n", "Name", "Title", "Gravity", "Wind", "Spawn ms", "Max fall")
	for _, p := range cfg.Profiles {
		marker := " "
		if p.Name == cfg.DefaultProfile {
			marker = "*"
		}
		fmt.Printf("%s %-8s  %-8s  %7.2f  %5.2f  %8d  %8.2f\n",
			marker, p.Name, p.Title, p.Gravity, p.Wind, p.SpawnIntervalMs, p.MaxFallSpeed)
	}
	fmt.Println()
	fmt.Println("* default profile")
}
