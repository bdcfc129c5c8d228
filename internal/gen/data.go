// Package gen builds leagues, rosters, draft prospects and free-agent pools
// from seeded streams. Every function here is deterministic: the same seed and
// year always produce the same output.
package gen

import "github.com/vovakirdan/courtside/internal/core"

// BaseYear is the first simulated calendar year; career histories are
// backfilled so they always cover BaseYear onward contiguously.
const BaseYear = 2020

var firstNames = []string{
	"Jalen", "Marcus", "Isaiah", "Noah", "Liam", "Ethan", "Mason", "Aiden",
	"Kai", "Leo", "Mateo", "Jayden", "Caleb", "Owen", "Carter", "Julian",
	"Jordan", "Darius", "Malik", "Trey", "Dillon", "DeAndre", "Aaron",
	"Tyrese", "Luke", "Sam", "Tim", "Rex", "Josh", "Popi",
}

var lastNames = []string{
	"Cruz", "Johnson", "Smith", "Brown", "Williams", "Jones", "Garcia",
	"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
	"Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson",
	"Martin", "Lee", "Perez", "Ward",
}

var colleges = []string{
	"Duke", "Kentucky", "Kansas", "Gonzaga", "UCLA", "North Carolina",
	"Michigan", "Villanova", "Arizona", "Houston", "Baylor", "Auburn",
	"Tennessee", "UConn", "Purdue", "Creighton",
}

// TeamNames are the 32 franchise names in fixed order.
var TeamNames = []string{
	"Atlanta Hawks", "Boston Celtics", "Brooklyn Nets", "Charlotte Hornets",
	"Chicago Bulls", "Cleveland Cavaliers", "Dallas Mavericks", "Denver Nuggets",
	"Detroit Pistons", "Golden State Warriors", "Houston Rockets", "Indiana Pacers",
	"LA Clippers", "Los Angeles Lakers", "Memphis Grizzlies", "Miami Heat",
	"Milwaukee Bucks", "Minnesota Timberwolves", "New Orleans Pelicans", "New York Knicks",
	"Oklahoma City Thunder", "Orlando Magic", "Philadelphia 76ers", "Phoenix Suns",
	"Portland Trail Blazers", "Sacramento Kings", "San Antonio Spurs", "Toronto Raptors",
	"Utah Jazz", "Washington Wizards",
	"Seattle Supersonics", "Las Vegas Outlaws",
}

// eastNames is the fixed conference lookup; everything else is West.
var eastNames = map[string]bool{
	"Atlanta Hawks":       true,
	"Boston Celtics":      true,
	"Brooklyn Nets":       true,
	"Charlotte Hornets":   true,
	"Chicago Bulls":       true,
	"Cleveland Cavaliers": true,
	"Detroit Pistons":     true,
	"Indiana Pacers":      true,
	"Miami Heat":          true,
	"Milwaukee Bucks":     true,
	"New York Knicks":     true,
	"Orlando Magic":       true,
	"Philadelphia 76ers":  true,
	"Toronto Raptors":     true,
	"Washington Wizards":  true,
	// Expansion team slotted East so both conferences hold 16.
	"Seattle Supersonics": true,
}

// ConferenceFor assigns a team to its conference by name lookup.
func ConferenceFor(name string) core.Conference {
	if eastNames[name] {
		return core.East
	}
	return core.West
}

// Continent describes one scouting region: how long travel there takes and
// how dense its talent pool is.
type Continent struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	TravelHours int     `json:"travelHours"`
	Density     float64 `json:"density"`
}

// Continents are the seven scouting regions. Antarctica is nearly empty on
// purpose.
var Continents = []Continent{
	{Key: "NA", Name: "North America", TravelHours: 0, Density: 1.00},
	{Key: "SA", Name: "South America", TravelHours: 6, Density: 0.55},
	{Key: "EU", Name: "Europe", TravelHours: 8, Density: 0.80},
	{Key: "AF", Name: "Africa", TravelHours: 10, Density: 0.45},
	{Key: "AS", Name: "Asia", TravelHours: 12, Density: 0.60},
	{Key: "OC", Name: "Oceania", TravelHours: 10, Density: 0.35},
	{Key: "AN", Name: "Antarctica", TravelHours: 20, Density: 0.02},
}

// ContinentByKey returns the continent with the given key, or nil.
func ContinentByKey(key string) *Continent {
	for i := range Continents {
		if Continents[i].Key == key {
			return &Continents[i]
		}
	}
	return nil
}
