package table

import (
	"errors"
	"fmt"

	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/events"
)

// ErrNoShoeEvents is returned by ReplayShoe for a shoe the store knows nothing about
var ErrNoShoeEvents = errors.New("no events for shoe")

// ShoeReplay is a shoe rebuilt from its event history
type ShoeReplay struct {
	ShoeID      string
	ShoeNumber  int
	BurnCard    cards.Card
	BurnedCards int

	Rounds       int
	Naturals     int
	PlayerDraws  int
	BankerDraws  int
	PlayerWins   int
	BankerWins   int
	Ties         int
	CardsDealt   int
	Remaining    int
	PlayerPayout float64
	BankerPayout float64
	HalfPayouts  int

	// Finished is false when the shoe was interrupted before the cut card
	Finished bool
}

// ReplayShoe reconstructs a shoe from the events stored under its ID
func ReplayShoe(store events.EventStore, shoeID string) (ShoeReplay, error) {
	history, err := store.LoadEvents(shoeID)
	if err != nil {
		return ShoeReplay{}, fmt.Errorf("load events of shoe %s: %w", shoeID, err)
	}
	if len(history) == 0 {
		return ShoeReplay{}, fmt.Errorf("%w %s", ErrNoShoeEvents, shoeID)
	}

	replay := ShoeReplay{ShoeID: shoeID}
	for _, event := range history {
		switch e := event.(type) {
		case events.ShoeStarted:
			replay.ShoeNumber = e.ShoeNumber
			replay.Remaining = e.Cards

		case events.CardsBurned:
			replay.BurnCard = e.BurnCard
			replay.BurnedCards = len(e.Burned)
			replay.Remaining = e.Remaining

		case events.RoundStarted:
			replay.Rounds++

		case events.CardDealt:
			replay.CardsDealt++
			replay.Remaining--

		case events.ThirdCardDrawn:
			replay.CardsDealt++
			replay.Remaining--
			if e.Side == "banker" {
				replay.BankerDraws++
			} else {
				replay.PlayerDraws++
			}

		case events.RoundResolved:
			if e.Natural {
				replay.Naturals++
			}
			switch e.Winner {
			case "player":
				replay.PlayerWins++
			case "banker":
				replay.BankerWins++
			default:
				replay.Ties++
			}

		case events.ShoeEnded:
			replay.Finished = true
			replay.Remaining = e.Remaining
			replay.PlayerPayout = e.PlayerPayout
			replay.BankerPayout = e.BankerPayout
			replay.HalfPayouts = e.BankerHalfPayouts
		}
	}

	return replay, nil
}
