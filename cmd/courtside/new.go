package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/courtside/internal/franchise"
	"github.com/vovakirdan/courtside/internal/gen"
	"github.com/vovakirdan/courtside/internal/platform/tui"
	"github.com/vovakirdan/courtside/internal/storage"
)

var (
	flagNewSeed string
	flagNewTeam int
	flagNewSlot int
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new franchise",
	Long: `Creates a fresh franchise in a save slot and drops you into the game.

The same seed always produces the same league, rosters and prospect
classes. Run 'courtside teams' to see the team indexes.

Examples:
  courtside new
  courtside new --team 7 --seed my-dynasty --slot 2`,
	Run: runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagNewSeed, "seed", "", "Generation seed (empty = time-based)")
	newCmd.Flags().IntVar(&flagNewTeam, "team", 0, "Team to control (index, see 'courtside teams')")
	newCmd.Flags().IntVar(&flagNewSlot, "slot", 1, "Save slot to create in")
}

func runNew(_ *cobra.Command, _ []string) {
	if flagNewTeam < 0 || flagNewTeam >= len(gen.TeamNames) {
		fmt.Fprintf(os.Stderr, "team index must be 0..%d\n", len(gen.TeamNames)-1)
		os.Exit(1)
	}
	if flagNewSlot < 1 {
		fmt.Fprintln(os.Stderr, "slot must be 1 or higher")
		os.Exit(1)
	}

	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagNewSeed
	if seed == "" {
		seed = fmt.Sprintf("franchise-%d", time.Now().UnixNano())
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, loadErr := store.Load(flagNewSlot); loadErr == nil {
		fmt.Fprintf(os.Stderr, "slot %d is already in use (delete it with 'courtside saves delete %d')\n", flagNewSlot, flagNewSlot)
		os.Exit(1)
	}

	session := franchise.New(rules, seed, flagNewTeam)

	blob, err := session.Encode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding save: %v\n", err)
		os.Exit(1)
	}
	info := storage.SaveInfo{
		Slot:     flagNewSlot,
		Seed:     seed,
		TeamName: session.UserTeam().Name,
		Year:     session.Year,
		Phase:    string(session.Phase),
	}
	if err := store.Save(info, blob); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing save: %v\n", err)
		os.Exit(1)
	}
	if err := store.SetActiveSlot(flagNewSlot); err != nil {
		fmt.Fprintf(os.Stderr, "Error activating slot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("New franchise: %s, %d season (seed %q, slot %d)\n",
		session.UserTeam().Name, session.Year, seed, flagNewSlot)

	if err := tui.Run(session, store, flagNewSlot); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}
}
