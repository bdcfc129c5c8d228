package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/courtside/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [slot]",
	Short: "Resume a franchise",
	Long: `Loads a saved franchise and drops you back into the game.

With no argument the active slot (the last one played) is used.

Examples:
  courtside play
  courtside play 2`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	slot := 0
	if len(args) == 1 {
		slot, err = strconv.Atoi(args[0])
		if err != nil || slot < 1 {
			fmt.Fprintf(os.Stderr, "invalid slot %q\n", args[0])
			os.Exit(1)
		}
	} else {
		slot, err = store.ActiveSlot()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading active slot: %v\n", err)
			os.Exit(1)
		}
		if slot == 0 {
			fmt.Fprintln(os.Stderr, "no active franchise (run 'courtside new' first)")
			os.Exit(1)
		}
	}

	session, err := loadSlot(store, slot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := store.SetActiveSlot(slot); err != nil {
		fmt.Fprintf(os.Stderr, "Error activating slot: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(session, store, slot); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}
}
