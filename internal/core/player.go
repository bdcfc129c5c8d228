// Package core defines the franchise domain model shared by the generators,
// the simulation engine and the presentation layer. Types here are plain data
// with JSON tags so the whole season state round-trips through the save store.
package core

import "math"

// Position is one of the five positions on the floor.
type Position string

const (
	PG Position = "PG"
	SG Position = "SG"
	SF Position = "SF"
	PF Position = "PF"
	C  Position = "C"
)

// Positions lists all positions in depth-chart order.
var Positions = []Position{PG, SG, SF, PF, C}

// PotentialGrade is a letter grade bounding a player's long-run OVR ceiling.
// The grade is visible; the hard number it maps to is an engine detail.
type PotentialGrade string

const (
	GradeAPlus PotentialGrade = "A+"
	GradeA     PotentialGrade = "A"
	GradeB     PotentialGrade = "B"
	GradeC     PotentialGrade = "C"
	GradeD     PotentialGrade = "D"
	GradeF     PotentialGrade = "F"
)

// Grades lists all grades best-first.
var Grades = []PotentialGrade{GradeAPlus, GradeA, GradeB, GradeC, GradeD, GradeF}

// Ceiling returns the OVR above which growth stalls for this grade.
func (g PotentialGrade) Ceiling() int {
	switch g {
	case GradeAPlus:
		return 99
	case GradeA:
		return 92
	case GradeB:
		return 84
	case GradeC:
		return 77
	case GradeD:
		return 70
	default:
		return 60
	}
}

// Contract is the remaining deal a player is signed to, in years and
// millions per year.
type Contract struct {
	Years  int     `json:"years"`
	Salary float64 `json:"salary"`
}

// Rotation is a player's place in the weekly minute allocation.
type Rotation struct {
	Minutes   int  `json:"minutes"`
	IsStarter bool `json:"isStarter"`
}

// SeasonStats are running totals for the current season. Reset every year.
type SeasonStats struct {
	Games    int `json:"gp"`
	Points   int `json:"pts"`
	Rebounds int `json:"reb"`
	Assists  int `json:"ast"`
}

// CareerSeason is one archived season line. Append-only once written.
type CareerSeason struct {
	Year  int         `json:"year"`
	Team  string      `json:"team"`
	Stats SeasonStats `json:"stats"`
}

// Player is a rostered player. Off/Def are the true sub-ratings; OVR is
// always their rounded mean.
type Player struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Pos            Position       `json:"pos"`
	Age            int            `json:"age"`
	Off            int            `json:"off"`
	Def            int            `json:"def"`
	OVR            int            `json:"ovr"`
	PotentialGrade PotentialGrade `json:"potentialGrade"`
	Happiness      int            `json:"happiness"`
	Contract       *Contract      `json:"contract"`
	Rotation       Rotation       `json:"rotation"`
	Stats          SeasonStats    `json:"stats"`
	CareerStats    []CareerSeason `json:"careerStats"`
	RookieYear     int            `json:"rookieYear,omitempty"`
}

// RecalcOVR restores the ovr == round((off+def)/2) invariant after any
// change to the sub-ratings.
func (p *Player) RecalcOVR() {
	p.OVR = int(math.Round(float64(p.Off+p.Def) / 2))
}

// PPG returns points per game for the current season, 0 if unplayed.
func (p *Player) PPG() float64 {
	if p.Stats.Games == 0 {
		return 0
	}
	return float64(p.Stats.Points) / float64(p.Stats.Games)
}

// RetiredPlayer is a player removed from simulation, stamped with the season
// and team they retired from.
type RetiredPlayer struct {
	Player      Player `json:"player"`
	RetiredYear int    `json:"retiredYear"`
	LastTeam    string `json:"lastTeam"`
}

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ClampF bounds v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round2 rounds to two decimals, the precision all salary figures carry.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
