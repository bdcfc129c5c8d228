// Package config provides YAML-based franchise rule loading for the
// platform. Rules loaded here are frozen into the save at franchise
// creation; edits never retroactively change an existing career.
package config

import "github.com/vovakirdan/courtside/internal/franchise"

// FranchiseConfig contains all tunable rules for a new franchise.
type FranchiseConfig struct {
	Season   SeasonConfig   `yaml:"season"`
	League   LeagueConfig   `yaml:"league"`
	Draft    DraftConfig    `yaml:"draft"`
	Scouting ScoutingConfig `yaml:"scouting"`
	Market   MarketConfig   `yaml:"market"`
}

// SeasonConfig defines the regular-season clock and the weekly time budget.
type SeasonConfig struct {
	Weeks        int `yaml:"weeks"`
	HoursPerWeek int `yaml:"hours_per_week"`
	HoursBankMax int `yaml:"hours_bank_max"`
}

// LeagueConfig defines roster and cap limits.
type LeagueConfig struct {
	SalaryCap float64 `yaml:"salary_cap"`
	RosterMin int     `yaml:"roster_min"`
	RosterMax int     `yaml:"roster_max"`
}

// DraftConfig defines the draft shape and the future-pick window.
type DraftConfig struct {
	Rounds          int `yaml:"rounds"`
	FuturePickYears int `yaml:"future_pick_years"`
}

// ScoutingConfig defines prospect pool sizes and international recruiting.
type ScoutingConfig struct {
	ProspectCount    int `yaml:"prospect_count"`
	DeclareThreshold int `yaml:"declare_threshold"`
	IntlExpiryWeeks  int `yaml:"intl_expiry_weeks"`
}

// MarketConfig defines free agency and CPU trade behavior.
type MarketConfig struct {
	FreeAgentCount int     `yaml:"free_agent_count"`
	CPUTradeChance float64 `yaml:"cpu_trade_chance"`
}

// Rules converts the config into engine rules, substituting defaults for
// anything left zero so a sparse YAML file still produces a playable game.
func (c FranchiseConfig) Rules() franchise.Rules {
	r := franchise.DefaultRules()

	if c.Season.Weeks > 0 {
		r.SeasonWeeks = c.Season.Weeks
	}
	if c.Season.HoursPerWeek > 0 {
		r.HoursPerWeek = c.Season.HoursPerWeek
	}
	if c.Season.HoursBankMax > 0 {
		r.HoursBankMax = c.Season.HoursBankMax
	}
	if c.League.SalaryCap > 0 {
		r.SalaryCap = c.League.SalaryCap
	}
	if c.League.RosterMin > 0 {
		r.RosterMin = c.League.RosterMin
	}
	if c.League.RosterMax > 0 {
		r.RosterMax = c.League.RosterMax
	}
	if c.Draft.Rounds > 0 {
		r.DraftRounds = c.Draft.Rounds
	}
	if c.Draft.FuturePickYears > 0 {
		r.FuturePickYears = c.Draft.FuturePickYears
	}
	if c.Scouting.ProspectCount > 0 {
		r.ProspectCount = c.Scouting.ProspectCount
	}
	if c.Scouting.DeclareThreshold > 0 {
		r.DeclareThreshold = c.Scouting.DeclareThreshold
	}
	if c.Scouting.IntlExpiryWeeks > 0 {
		r.IntlExpiryWeeks = c.Scouting.IntlExpiryWeeks
	}
	if c.Market.FreeAgentCount > 0 {
		r.FreeAgentCount = c.Market.FreeAgentCount
	}
	if c.Market.CPUTradeChance > 0 {
		r.CPUTradeChance = c.Market.CPUTradeChance
	}

	return r
}
