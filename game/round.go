package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/events"
)

type RoundPhase string

const (
	RoundPhase_Start           RoundPhase = "start"
	RoundPhase_Dealt           RoundPhase = "dealt"
	RoundPhase_PlayerThirdCard RoundPhase = "player.third_card"
	RoundPhase_BankerThirdCard RoundPhase = "banker.third_card"
	RoundPhase_Resolved        RoundPhase = "resolved"
)

// MaxCardsPerRound is the most cards a single round can take from the shoe
const MaxCardsPerRound = 6

// Round represents one coup of baccarat dealt from a shoe
type Round struct {
	ID     string
	ShoeID string
	Phase  RoundPhase

	Player Hand
	Banker Hand

	playerThird *cards.Card
	outcome     Outcome
	shoe        *cards.Shoe

	// events
	Events        []events.Event
	eventHandlers []events.EventHandler
}

// NewRound creates a round that deals from shoe
func NewRound(id string, shoeID string, shoe *cards.Shoe) *Round {
	return &Round{
		ID:            id,
		ShoeID:        shoeID,
		Phase:         RoundPhase_Start,
		Player:        NewHand(SidePlayer),
		Banker:        NewHand(SideBanker),
		shoe:          shoe,
		Events:        []events.Event{},
		eventHandlers: []events.EventHandler{},
	}
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (r *Round) RegisterEventHandler(handler events.EventHandler) {
	r.eventHandlers = append(r.eventHandlers, handler)
}

// emitEvent notifies all registered handlers of a new event
func (r *Round) emitEvent(event events.Event) {
	r.Events = append(r.Events, event)

	for _, handler := range r.eventHandlers {
		handler(event)
	}
}

// IsInPhase checks if the round is in the given phase
func (r *Round) IsInPhase(phase RoundPhase) bool {
	return r.Phase == phase
}

// Outcome returns the result of a resolved round
func (r *Round) Outcome() (Outcome, bool) {
	return r.outcome, r.IsInPhase(RoundPhase_Resolved)
}

// Play deals the round and applies the drawing rules until it is resolved.
// A shoe running out mid-round aborts the round with cards.ErrShoeExhausted;
// Collect still returns whatever was dealt to the discard pile.
func (r *Round) Play() (Outcome, error) {
	if !r.IsInPhase(RoundPhase_Start) {
		return Outcome{}, errors.New("round has already been played")
	}

	if err := r.deal(); err != nil {
		return Outcome{}, err
	}

	if !r.isNatural() {
		if err := r.playerThirdCard(); err != nil {
			return Outcome{}, err
		}
		if err := r.bankerThirdCard(); err != nil {
			return Outcome{}, err
		}
	}

	return r.resolve(), nil
}

// deal gives two cards to each side, alternating player then banker
func (r *Round) deal() error {
	for pass := 0; pass < 2; pass++ {
		for _, hand := range []*Hand{&r.Player, &r.Banker} {
			card, err := r.shoe.Draw()
			if err != nil {
				return fmt.Errorf("deal to %s: %w", hand.Side, err)
			}
			hand.add(card)

			r.emitEvent(events.CardDealt{
				ShoeID:  r.ShoeID,
				RoundID: r.ID,
				Side:    string(hand.Side),
				Card:    card,
				At:      time.Now(),
			})
		}
	}

	r.transitionTo(RoundPhase_Dealt)
	return nil
}

func (r *Round) isNatural() bool {
	return r.Player.IsNatural() || r.Banker.IsNatural()
}

func (r *Round) playerThirdCard() error {
	r.transitionTo(RoundPhase_PlayerThirdCard)

	if !PlayerDraws(r.Player.Score()) {
		return nil
	}

	card, err := r.drawThirdCard(&r.Player)
	if err != nil {
		return err
	}
	r.playerThird = &card
	return nil
}

func (r *Round) bankerThirdCard() error {
	r.transitionTo(RoundPhase_BankerThirdCard)

	if !BankerDraws(r.Banker.Score(), r.playerThird != nil, r.playerThirdRank()) {
		return nil
	}

	_, err := r.drawThirdCard(&r.Banker)
	return err
}

func (r *Round) drawThirdCard(hand *Hand) (cards.Card, error) {
	card, err := r.shoe.Draw()
	if err != nil {
		return cards.Card{}, fmt.Errorf("third card to %s: %w", hand.Side, err)
	}
	hand.add(card)

	r.emitEvent(events.ThirdCardDrawn{
		ShoeID:  r.ShoeID,
		RoundID: r.ID,
		Side:    string(hand.Side),
		Card:    card,
		Score:   hand.Score(),
		At:      time.Now(),
	})

	return card, nil
}

func (r *Round) playerThirdRank() int {
	if r.playerThird == nil {
		return 0
	}
	return r.playerThird.Rank()
}

func (r *Round) resolve() Outcome {
	playerScore := r.Player.Score()
	bankerScore := r.Banker.Score()
	winner, payout := DetermineWinner(playerScore, bankerScore)

	r.outcome = Outcome{
		Winner:          winner,
		Payout:          payout,
		PlayerScore:     playerScore,
		BankerScore:     bankerScore,
		PlayerCards:     r.Player.Cards.Clone(),
		BankerCards:     r.Banker.Cards.Clone(),
		Natural:         r.isNatural(),
		PlayerThirdRank: r.playerThirdRank(),
		BankerDrew:      r.Banker.HasThirdCard(),
	}

	r.transitionTo(RoundPhase_Resolved)

	r.emitEvent(events.RoundResolved{
		ShoeID:      r.ShoeID,
		RoundID:     r.ID,
		Winner:      string(winner),
		Natural:     r.outcome.Natural,
		PlayerCards: r.outcome.PlayerCards,
		BankerCards: r.outcome.BankerCards,
		PlayerScore: playerScore,
		BankerScore: bankerScore,
		Payout:      payout,
		At:          time.Now(),
	})

	return r.outcome
}

// Collect moves the cards of both hands onto the shoe's discard pile and
// leaves the hands empty.
func (r *Round) Collect() {
	r.shoe.Discard(r.Player.Cards.Empty()...)
	r.shoe.Discard(r.Banker.Cards.Empty()...)
}

func (r *Round) transitionTo(phase RoundPhase) {
	previousPhase := r.Phase
	r.Phase = phase

	r.emitEvent(events.PhaseChanged{
		ShoeID:        r.ShoeID,
		RoundID:       r.ID,
		PreviousPhase: string(previousPhase),
		NewPhase:      string(phase),
		At:            time.Now(),
	})
}
