package config

import (
	_ "embed"
)

//go:embed defaults/franchise.yaml
var defaultFranchiseYAML []byte

// DefaultFranchiseConfig returns the standard franchise configuration.
func DefaultFranchiseConfig() FranchiseConfig {
	return FranchiseConfig{
		Season: SeasonConfig{
			Weeks:        20,
			HoursPerWeek: 25,
			HoursBankMax: 60,
		},
		League: LeagueConfig{
			SalaryCap: 120.0,
			RosterMin: 12,
			RosterMax: 15,
		},
		Draft: DraftConfig{
			Rounds:          2,
			FuturePickYears: 4,
		},
		Scouting: ScoutingConfig{
			ProspectCount:    100,
			DeclareThreshold: 75,
			IntlExpiryWeeks:  3,
		},
		Market: MarketConfig{
			FreeAgentCount: 80,
			CPUTradeChance: 0.20,
		},
	}
}
