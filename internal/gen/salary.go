package gen

import (
	"math"

	"github.com/vovakirdan/courtside/internal/core"
)

// LeagueMinimum is the minimum annual salary in millions.
const LeagueMinimum = 0.5

// DefaultCap is the hard salary cap every team starts with, in millions.
const DefaultCap = 120.0

// Salary maps (overall rating, age) to a fair-market annual salary in
// millions. This is the single salary authority: roster generation,
// re-signing and free-agent asks all go through it so economic behavior
// stays uniform.
//
// The base follows a power curve calibrated to a 120M cap: 99 OVR is a
// ~48M supermax, 60 OVR and below is league minimum. Age discounts the
// base: unproven (<22) 95%, prime (22-29) 100%, post-prime (30-33) 90%,
// decline (34+) 70%.
func Salary(ovr, age int) float64 {
	base := LeagueMinimum
	if ovr > 60 {
		t := float64(ovr-60) / float64(99-60)
		base = LeagueMinimum + math.Pow(t, 2.2)*47.5
	}

	ageMult := 1.0
	switch {
	case age < 22:
		ageMult = 0.95
	case age >= 34:
		ageMult = 0.70
	case age >= 30:
		ageMult = 0.90
	}

	return core.Round2(base * ageMult)
}
