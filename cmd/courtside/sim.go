package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/courtside/internal/franchise"
	"github.com/vovakirdan/courtside/internal/storage"
)

var simCmd = &cobra.Command{
	Use:   "sim <weeks>",
	Short: "Simulate weeks without the UI",
	Long: `Advances the active franchise by up to the given number of weeks,
logging your team's record as it goes. Stops early when the regular
season ends; playoffs and the offseason are played interactively.

Examples:
  courtside sim 5
  courtside sim 20`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func runSim(_ *cobra.Command, args []string) {
	weeks, err := strconv.Atoi(args[0])
	if err != nil || weeks < 1 {
		fmt.Fprintf(os.Stderr, "invalid week count %q\n", args[0])
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	slot, err := store.ActiveSlot()
	if err != nil || slot == 0 {
		fmt.Fprintln(os.Stderr, "no active franchise (run 'courtside new' first)")
		os.Exit(1)
	}

	session, err := loadSlot(store, slot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if session.Phase != franchise.PhaseRegular {
		fmt.Fprintf(os.Stderr, "franchise is in %s, nothing to sim\n", session.Phase)
		os.Exit(1)
	}

	user := session.UserTeam()
	for i := 0; i < weeks; i++ {
		if session.SeasonOver() {
			logger.Info("regular season complete", "record", fmt.Sprintf("%d-%d", user.Wins, user.Losses))
			break
		}
		played := session.Week
		if err := session.AdvanceWeek(); err != nil {
			logger.Error("week failed", "week", played, "error", err)
			os.Exit(1)
		}
		logger.Info("week simulated",
			"week", played,
			"record", fmt.Sprintf("%d-%d", user.Wins, user.Losses),
			"hours", session.TotalHours(),
		)
	}

	blob, err := session.Encode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding save: %v\n", err)
		os.Exit(1)
	}
	info := storage.SaveInfo{
		Slot:     slot,
		Seed:     session.Meta.Seed,
		TeamName: user.Name,
		Year:     session.Year,
		Phase:    string(session.Phase),
	}
	if err := store.Save(info, blob); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing save: %v\n", err)
		os.Exit(1)
	}
}
