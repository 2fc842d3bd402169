package stats

import (
	"errors"
	"fmt"

	"github.com/lazharichir/baccarat/game"
)

// ErrDivisionUndefined is returned by the percentage helpers before any game is recorded.
var ErrDivisionUndefined = errors.New("no games recorded")

// Convention decides how the bet-player ledger settles a banker win on 6.
type Convention string

const (
	// ConventionCoupled keeps the player ledger the mirror of the banker
	// ledger: a banker win on 6 costs the player bet half a unit.
	ConventionCoupled Convention = "coupled"

	// ConventionIndependent settles each flat bet on its own: a player bet
	// always loses a full unit when the banker wins.
	ConventionIndependent Convention = "independent"
)

// ParseConvention returns the convention named s
func ParseConvention(s string) (Convention, error) {
	switch c := Convention(s); c {
	case ConventionCoupled, ConventionIndependent:
		return c, nil
	default:
		return "", fmt.Errorf("unknown ledger convention %q", s)
	}
}

// Settle returns what a one-unit flat bet on each side wins or loses on outcome
func (c Convention) Settle(outcome game.Outcome) (player, banker float64) {
	banker = outcome.BankerBetResult()
	if c == ConventionCoupled {
		return -banker, banker
	}
	return outcome.PlayerBetResult(), banker
}

// Ledger is a pair of running flat-bet totals
type Ledger struct {
	Player float64
	Banker float64
}

// ShoeSummary is the tally of a single shoe
type ShoeSummary struct {
	Shoe              int
	Rounds            int
	PlayerPayout      float64
	BankerPayout      float64
	BankerHalfPayouts int
}

// Tracker accumulates round outcomes over a session of shoes.
// Counters and the running series span the session; the shoe ledger is reset
// by StartShoe.
type Tracker struct {
	convention Convention

	TotalGames    int
	PlayerWins    int
	BankerWins    int
	BankerWinsAt6 int
	Ties          int

	session Ledger

	// running totals after every round, across the whole session
	playerSeries []float64
	bankerSeries []float64

	shoe      ShoeSummary
	shoes     []ShoeSummary
	shoeCount int
}

// NewTracker creates a tracker settling flat bets with convention
func NewTracker(convention Convention) *Tracker {
	return &Tracker{
		convention:   convention,
		playerSeries: []float64{},
		bankerSeries: []float64{},
		shoes:        []ShoeSummary{},
	}
}

// Convention returns the ledger convention of the tracker
func (t *Tracker) Convention() Convention {
	return t.convention
}

// Record adds one round outcome to the counters and ledgers
func (t *Tracker) Record(outcome game.Outcome) {
	t.TotalGames++
	t.shoe.Rounds++

	switch outcome.Winner {
	case game.WinnerPlayer:
		t.PlayerWins++
	case game.WinnerBanker:
		t.BankerWins++
		if outcome.IsHalfPayout() {
			t.BankerWinsAt6++
			t.shoe.BankerHalfPayouts++
		}
	default:
		t.Ties++
	}

	player, banker := t.convention.Settle(outcome)
	t.session.Player += player
	t.session.Banker += banker
	t.shoe.PlayerPayout += player
	t.shoe.BankerPayout += banker

	t.playerSeries = append(t.playerSeries, t.session.Player)
	t.bankerSeries = append(t.bankerSeries, t.session.Banker)
}

// StartShoe resets the shoe ledger and returns the number of the new shoe
func (t *Tracker) StartShoe() int {
	t.shoeCount++
	t.shoe = ShoeSummary{Shoe: t.shoeCount}
	return t.shoeCount
}

// EndShoe closes the current shoe and records its tally
func (t *Tracker) EndShoe() ShoeSummary {
	t.shoes = append(t.shoes, t.shoe)
	return t.shoe
}

// CurrentShoe returns the tally of the shoe in progress
func (t *Tracker) CurrentShoe() ShoeSummary {
	return t.shoe
}

// Totals returns the session flat-bet ledger
func (t *Tracker) Totals() Ledger {
	return t.session
}

// PlayerSeries returns the player ledger after each round
func (t *Tracker) PlayerSeries() []float64 {
	return clone(t.playerSeries)
}

// BankerSeries returns the banker ledger after each round
func (t *Tracker) BankerSeries() []float64 {
	return clone(t.bankerSeries)
}

// Shoes returns the tallies of every finished shoe
func (t *Tracker) Shoes() []ShoeSummary {
	shoes := make([]ShoeSummary, len(t.shoes))
	copy(shoes, t.shoes)
	return shoes
}

func (t *Tracker) percent(count int) (float64, error) {
	if t.TotalGames == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(count) / float64(t.TotalGames) * 100, nil
}

func (t *Tracker) PlayerWinPercent() (float64, error) { return t.percent(t.PlayerWins) }

func (t *Tracker) BankerWinPercent() (float64, error) { return t.percent(t.BankerWins) }

func (t *Tracker) TiePercent() (float64, error) { return t.percent(t.Ties) }

// HalfPayoutPercent is the share of all games won by the banker on 6
func (t *Tracker) HalfPayoutPercent() (float64, error) { return t.percent(t.BankerWinsAt6) }

func clone(values []float64) []float64 {
	c := make([]float64, len(values))
	copy(c, values)
	return c
}
