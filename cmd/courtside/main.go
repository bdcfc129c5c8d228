// courtside is a single-player basketball franchise simulation for the
// terminal.
//
// Usage:
//
//	courtside new              - Start a new franchise
//	courtside play             - Resume the active franchise
//	courtside sim <weeks>      - Simulate weeks without the UI
//	courtside saves            - List save slots
//	courtside teams            - List the selectable franchises
//	courtside serve            - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Save database path (default: ~/.courtside/saves.db)
//	--config <path>  - Custom rules config file
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/courtside/internal/config"
	"github.com/vovakirdan/courtside/internal/franchise"
	"github.com/vovakirdan/courtside/internal/storage"
)

var (
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "courtside",
	Short: "Courtside - run a basketball franchise from your terminal",
	Long: `Courtside is a single-player basketball franchise sim. Take over one of
32 teams, play out seasons week by week, scout the globe, survive free
agency and build through the draft.

Available commands:
  new      - Start a new franchise
  play     - Resume the active franchise
  sim      - Simulate weeks headlessly
  saves    - List and manage save slots
  teams    - List the selectable franchises
  serve    - Start SSH server for remote play

Examples:
  courtside new --team 3 --seed my-dynasty
  courtside play
  courtside sim 20
  courtside saves
  courtside serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.courtside/saves.db", "Path to save database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Custom rules config file")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadRules resolves the active ruleset from the config chain.
func loadRules() (franchise.Rules, error) {
	cfg, err := config.LoadFranchise(flagConfig)
	if err != nil {
		return franchise.Rules{}, err
	}
	return cfg.Rules(), nil
}

// openStore opens the save database from the global flag.
func openStore() (*storage.Store, error) {
	return storage.Open(flagDBPath)
}

// loadSlot decodes the session stored in the given slot.
func loadSlot(store *storage.Store, slot int) (*franchise.Session, error) {
	blob, err := store.Load(slot)
	if errors.Is(err, storage.ErrSlotEmpty) {
		return nil, fmt.Errorf("slot %d is empty (run 'courtside new' first)", slot)
	}
	if err != nil {
		return nil, err
	}
	session, err := franchise.Decode(blob)
	if errors.Is(err, franchise.ErrNoSave) {
		return nil, fmt.Errorf("slot %d holds no usable save", slot)
	}
	return session, err
}
