package cards

import (
	"errors"
	"fmt"
	"math/rand"
)

// Shoe represents multiple decks of cards dealt from one box.
//
// Every card of the shoe is in exactly one of three piles: live (still to be
// dealt), discarded (played in a round) or burned (removed at the start of
// the shoe). Shuffle brings all of them back into live.
type Shoe struct {
	live      Stack
	discarded Stack
	burned    Stack
	size      int
	rng       *rand.Rand
}

// BurnResult describes the cards removed by Burn
type BurnResult struct {
	BurnCard Card
	Burned   Stack // burn card first, then the cards it counted off
}

// Count is the number of cards counted off after the burn card
func (b BurnResult) Count() int {
	return b.BurnCard.Rank()
}

// NewShoe creates a new shoe with a given number of decks, in deck order.
// The shoe is not shuffled.
func NewShoe(numDecks int, rng *rand.Rand) (*Shoe, error) {
	if numDecks < 1 {
		return nil, fmt.Errorf("%w: need at least 1 deck, got %d", ErrInvalidDeckCount, numDecks)
	}
	if rng == nil {
		return nil, errors.New("shoe needs a random source")
	}

	cards := make(Stack, 0, numDecks*DeckSize)
	for i := 0; i < numDecks; i++ {
		cards.AddCards(NewDeck52()...)
	}
	return NewShoeFromStack(cards, rng), nil
}

// NewShoeFromStack creates a shoe whose live cards are dealt in the given order.
func NewShoeFromStack(live Stack, rng *rand.Rand) *Shoe {
	cards := make(Stack, len(live))
	copy(cards, live)
	return &Shoe{
		live:      cards,
		discarded: Stack{},
		burned:    Stack{},
		size:      len(cards),
		rng:       rng,
	}
}

// Shuffle returns the discarded and burned cards to the shoe and shuffles all of them
func (s *Shoe) Shuffle() {
	s.live.AddCards(s.discarded.Empty()...)
	s.live.AddCards(s.burned.Empty()...)

	s.rng.Shuffle(len(s.live), func(i, j int) {
		s.live[i], s.live[j] = s.live[j], s.live[i]
	})
}

// Burn turns over the top card and burns as many further cards as its rank.
// A King burns thirteen more. If the shoe cannot cover the count the shoe is
// left untouched and ErrShoeExhausted is returned.
func (s *Shoe) Burn() (BurnResult, error) {
	if s.live.IsEmpty() {
		return BurnResult{}, fmt.Errorf("burn card: %w", ErrShoeExhausted)
	}

	burnCard := s.live[0]
	count := burnCard.Rank()
	if len(s.live) < count+1 {
		return BurnResult{}, fmt.Errorf("burn %d cards with %d left: %w", count+1, len(s.live), ErrShoeExhausted)
	}

	burned := s.live.DealCards(count + 1)
	s.burned.AddCards(burned...)

	return BurnResult{BurnCard: burnCard, Burned: burned}, nil
}

// Draw deals the top card of the shoe
func (s *Shoe) Draw() (Card, error) {
	if s.live.IsEmpty() {
		return Card{}, ErrShoeExhausted
	}
	return s.live.DealCard(), nil
}

// Discard puts played cards on the discard pile
func (s *Shoe) Discard(cards ...Card) {
	s.discarded.AddCards(cards...)
}

// Remaining returns the number of live cards
func (s *Shoe) Remaining() int {
	return len(s.live)
}

// IsEmpty reports whether there are no live cards left
func (s *Shoe) IsEmpty() bool {
	return s.live.IsEmpty()
}

// Size returns the number of cards the shoe was built with
func (s *Shoe) Size() int {
	return s.size
}

// Discarded returns a copy of the discard pile
func (s *Shoe) Discarded() Stack {
	return s.discarded.Clone()
}

// Burned returns a copy of the burned cards, in burn order
func (s *Shoe) Burned() Stack {
	return s.burned.Clone()
}

// Live returns a copy of the live cards, top first
func (s *Shoe) Live() Stack {
	return s.live.Clone()
}

func (s *Shoe) String() string {
	return "[" + s.live.String() + "]"
}
