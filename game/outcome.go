package game

import "github.com/lazharichir/baccarat/cards"

// Winner is the result of a round
type Winner string

const (
	WinnerPlayer Winner = "player"
	WinnerBanker Winner = "banker"
	WinnerTie    Winner = "tie"
)

const (
	FullPayout = 1.0
	HalfPayout = 0.5
	NoPayout   = 0.0

	// A banker win on this total is paid at half
	BankerHalfPayoutTotal = 6
)

// Outcome is the resolved result of one round
type Outcome struct {
	Winner          Winner
	Payout          float64 // multiplier paid on the winning side: 1, 0.5 or 0
	PlayerScore     int
	BankerScore     int
	PlayerCards     cards.Stack
	BankerCards     cards.Stack
	Natural         bool
	PlayerThirdRank int // 0 when the player stood
	BankerDrew      bool
}

// DetermineWinner compares final scores and returns the winner and its payout multiplier
func DetermineWinner(playerScore, bankerScore int) (Winner, float64) {
	switch {
	case playerScore > bankerScore:
		return WinnerPlayer, FullPayout
	case bankerScore > playerScore && bankerScore == BankerHalfPayoutTotal:
		return WinnerBanker, HalfPayout
	case bankerScore > playerScore:
		return WinnerBanker, FullPayout
	default:
		return WinnerTie, NoPayout
	}
}

// IsHalfPayout reports whether the banker won with a total of 6
func (o Outcome) IsHalfPayout() bool {
	return o.Winner == WinnerBanker && o.Payout == HalfPayout
}

// PlayerBetResult is the result of a one-unit bet on the player:
// +1 on a player win, -1 on any banker win, 0 on a tie.
func (o Outcome) PlayerBetResult() float64 {
	switch o.Winner {
	case WinnerPlayer:
		return FullPayout
	case WinnerBanker:
		return -FullPayout
	default:
		return NoPayout
	}
}

// BankerBetResult is the result of a one-unit bet on the banker:
// +1 on a banker win, +0.5 on a banker win with 6, -1 on a player win, 0 on a tie.
func (o Outcome) BankerBetResult() float64 {
	switch o.Winner {
	case WinnerBanker:
		return o.Payout
	case WinnerPlayer:
		return -FullPayout
	default:
		return NoPayout
	}
}
