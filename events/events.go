package events

import (
	"time"

	"github.com/lazharichir/baccarat/cards"
)

// Session events

type SessionStarted struct {
	SessionID        string
	NumDecks         int
	ShoeLimit        int
	CutCardThreshold int
	Seed             int64
	At               time.Time
}

func (e SessionStarted) Name() string { return "SESSION_STARTED" }

type SessionEnded struct {
	SessionID  string
	Shoes      int
	TotalGames int
	At         time.Time
}

func (e SessionEnded) Name() string { return "SESSION_ENDED" }

// Shoe events

type ShoeStarted struct {
	SessionID  string
	ShoeID     string
	ShoeNumber int
	Cards      int
	At         time.Time
}

func (e ShoeStarted) Name() string { return "SHOE_STARTED" }

type ShoeShuffled struct {
	ShoeID string
	Cards  int
	At     time.Time
}

func (e ShoeShuffled) Name() string { return "SHOE_SHUFFLED" }

type CardsBurned struct {
	ShoeID    string
	BurnCard  cards.Card
	Burned    cards.Stack
	Remaining int
	At        time.Time
}

func (e CardsBurned) Name() string { return "CARDS_BURNED" }

type ShoeEnded struct {
	SessionID         string
	ShoeID            string
	ShoeNumber        int
	Rounds            int
	Remaining         int
	PlayerPayout      float64
	BankerPayout      float64
	BankerHalfPayouts int
	At                time.Time
}

func (e ShoeEnded) Name() string { return "SHOE_ENDED" }

// Round events

type RoundStarted struct {
	ShoeID      string
	RoundID     string
	RoundNumber int
	Remaining   int
	At          time.Time
}

func (e RoundStarted) Name() string { return "ROUND_STARTED" }

type PhaseChanged struct {
	ShoeID        string
	RoundID       string
	PreviousPhase string
	NewPhase      string
	At            time.Time
}

func (e PhaseChanged) Name() string { return "PHASE_CHANGED" }

// CardDealt is emitted for each of the four initial cards
type CardDealt struct {
	ShoeID  string
	RoundID string
	Side    string
	Card    cards.Card
	At      time.Time
}

func (e CardDealt) Name() string { return "CARD_DEALT" }

type ThirdCardDrawn struct {
	ShoeID  string
	RoundID string
	Side    string
	Card    cards.Card
	Score   int
	At      time.Time
}

func (e ThirdCardDrawn) Name() string { return "THIRD_CARD_DRAWN" }

type RoundResolved struct {
	ShoeID      string
	RoundID     string
	Winner      string
	Natural     bool
	PlayerCards cards.Stack
	BankerCards cards.Stack
	PlayerScore int
	BankerScore int
	Payout      float64
	At          time.Time
}

func (e RoundResolved) Name() string { return "ROUND_RESOLVED" }
