package game

import "github.com/lazharichir/baccarat/cards"

// Side is one of the two hands dealt in every round
type Side string

const (
	SidePlayer Side = "player"
	SideBanker Side = "banker"
)

// Hand holds the two or three cards of one side for the current round
type Hand struct {
	Side  Side
	Cards cards.Stack
}

// NewHand creates an empty hand for side
func NewHand(side Side) Hand {
	return Hand{Side: side, Cards: cards.Stack{}}
}

// Score returns the baccarat value of the hand, 0 through 9
func (h Hand) Score() int {
	return HandValue(h.Cards)
}

// IsNatural reports whether the first two cards total 8 or 9
func (h Hand) IsNatural() bool {
	return len(h.Cards) == 2 && IsNatural(h.Score())
}

// HasThirdCard reports whether the hand drew a third card
func (h Hand) HasThirdCard() bool {
	return len(h.Cards) == 3
}

func (h *Hand) add(card cards.Card) {
	h.Cards.AddCard(card)
}

// HandValue returns the sum of the points of stack, modulo 10
func HandValue(stack cards.Stack) int {
	return stack.Points() % 10
}
