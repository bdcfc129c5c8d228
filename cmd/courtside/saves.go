package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/courtside/internal/gen"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	Long:  `Shows every save slot in the database and which one is active.`,
	Run:   runSaves,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesDeleteCmd)
}

func runSaves(_ *cobra.Command, _ []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	saves, err := store.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing saves: %v\n", err)
		os.Exit(1)
	}
	if len(saves) == 0 {
		fmt.Println("No saves yet. Run 'courtside new' to start a franchise.")
		return
	}

	active, err := store.ActiveSlot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading active slot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-4s  %-24s  %-6s  %-12s  %s\n", "Slot", "Team", "Year", "Phase", "Last played")
	for _, s := range saves {
		marker := " "
		if s.Slot == active {
			marker = "*"
		}
		fmt.Printf("%s %-4d  %-24s  %-6d  %-12s  %s\n",
			marker, s.Slot, s.TeamName, s.Year, s.Phase, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'courtside play <slot>' to resume a save.")
}

func runSavesDelete(_ *cobra.Command, args []string) {
	slot, err := strconv.Atoi(args[0])
	if err != nil || slot < 1 {
		fmt.Fprintf(os.Stderr, "invalid slot %q\n", args[0])
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Delete(slot); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting slot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Slot %d deleted.\n", slot)
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the selectable franchises",
	Long:  `Shows the 32 franchises and the index to pass to 'courtside new --team'.`,
	Run:   runTeams,
}

func runTeams(_ *cobra.Command, _ []string) {
	fmt.Println("Franchises:")
	fmt.Println()
	for i, name := range gen.TeamNames {
		fmt.Printf("  %2d  %-26s %s\n", i, name, gen.ConferenceFor(name))
	}
	fmt.Println()
	fmt.Println("Run 'courtside new --team <index>' to take one over.")
}
