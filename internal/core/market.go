package core

// ProspectPool distinguishes the two draft-eligible pools.
type ProspectPool string

const (
	PoolDomestic      ProspectPool = "NCAA"
	PoolInternational ProspectPool = "INTL"
)

// Prospect is a draft-eligible player-to-be. International prospects must be
// discovered and recruited before they declare; undeclared discovered
// prospects expire a fixed number of weeks after being found.
type Prospect struct {
	ID              string         `json:"id"`
	Pool            ProspectPool   `json:"pool"`
	Name            string         `json:"name"`
	Pos             Position       `json:"pos"`
	Age             int            `json:"age"`
	CurrentOVR      int            `json:"currentOVR"`
	PotentialGrade  PotentialGrade `json:"potentialGrade"`
	College         string         `json:"college,omitempty"`
	ContinentKey    string         `json:"continentKey,omitempty"`
	ContinentName   string         `json:"continentName,omitempty"`
	Declared        bool           `json:"declared"`
	Discovered      bool           `json:"discovered"`
	Scouted         bool           `json:"scouted"`
	DeclareInterest int            `json:"declareInterest,omitempty"`
	Drafted         bool           `json:"drafted"`
}

// Offer is one team's competing bid for a free agent.
type Offer struct {
	TeamID string  `json:"teamId"`
	Salary float64 `json:"salary"`
	Years  int     `json:"years"`
}

// Score is the comparable weight of an offer: total guaranteed money.
func (o Offer) Score() float64 {
	return o.Salary * float64(o.Years)
}

// FreeAgent is an unsigned player on the offseason market.
type FreeAgent struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Pos            Position       `json:"pos"`
	Age            int            `json:"age"`
	Off            int            `json:"off"`
	Def            int            `json:"def"`
	OVR            int            `json:"ovr"`
	PotentialGrade PotentialGrade `json:"potentialGrade"`
	Ask            float64        `json:"ask"`
	YearsAsk       int            `json:"yearsAsk"`
	WantsWinning   bool           `json:"wantsWinning"`
	WantsRole      bool           `json:"wantsRole"`
	Ambition       int            `json:"ambition"`
	Loyalty        int            `json:"loyalty"`
	Offers         []Offer        `json:"offers"`
	SignedByTeamID string         `json:"signedByTeamId,omitempty"`
	CareerStats    []CareerSeason `json:"careerStats"`
}

// AskScore is the weight a free agent assigns to their own demand.
func (f *FreeAgent) AskScore() float64 {
	return f.Ask * float64(f.YearsAsk)
}

// BestOffer returns the highest-scoring competing offer, or nil if none.
func (f *FreeAgent) BestOffer() *Offer {
	var best *Offer
	for i := range f.Offers {
		o := &f.Offers[i]
		if best == nil || o.Score() > best.Score() {
			best = o
		}
	}
	return best
}

// ToPlayer converts a signed free agent into a rostered player.
func (f *FreeAgent) ToPlayer(years int, salary float64) *Player {
	p := &Player{
		ID:             f.ID,
		Name:           f.Name,
		Pos:            f.Pos,
		Age:            f.Age,
		Off:            f.Off,
		Def:            f.Def,
		PotentialGrade: f.PotentialGrade,
		Happiness:      70,
		Contract:       &Contract{Years: years, Salary: salary},
		CareerStats:    f.CareerStats,
	}
	if p.CareerStats == nil {
		p.CareerStats = []CareerSeason{}
	}
	p.RecalcOVR()
	return p
}
