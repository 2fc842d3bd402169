package table

import (
	"github.com/lazharichir/baccarat/events"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
)

// narrate logs the course of the session. Rounds are only narrated at info
// level in verbose mode; every event is dumped at debug level.
func (t *Table) narrate(event events.Event) {
	if t.debugEnabled() {
		t.logger.WithField("event", event.Name()).Debug(litter.Sdump(event))
	}

	switch e := event.(type) {
	case events.SessionStarted:
		t.logger.WithFields(logrus.Fields{
			"decks":    e.NumDecks,
			"shoes":    e.ShoeLimit,
			"cut_card": e.CutCardThreshold,
			"seed":     e.Seed,
		}).Info("Session started")

	case events.ShoeStarted:
		if t.config.Verbose {
			t.logger.WithField("cards", e.Cards).Infof("Setting up shoe %d", e.ShoeNumber)
		}

	case events.CardsBurned:
		if t.config.Verbose {
			t.logger.WithField("remaining", e.Remaining).
				Infof("Burn card was %s, burning %d cards", e.BurnCard, len(e.Burned)-1)
		}

	case events.ThirdCardDrawn:
		if t.config.Verbose {
			t.logger.Infof("%s gets a third card: %s (score %d)", titleSide(e.Side), e.Card, e.Score)
		}

	case events.RoundResolved:
		if !t.config.Verbose {
			return
		}
		entry := t.logger.WithFields(logrus.Fields{
			"player": e.PlayerCards.String(),
			"banker": e.BankerCards.String(),
		})
		switch e.Winner {
		case "player":
			entry.Infof("Player wins with [%s] totaling %d", e.PlayerCards, e.PlayerScore)
		case "banker":
			entry.Infof("Banker wins with [%s] totaling %d (pays %.1f)", e.BankerCards, e.BankerScore, e.Payout)
		default:
			entry.Infof("Push. Player total = %d. Banker total = %d", e.PlayerScore, e.BankerScore)
		}

	case events.ShoeEnded:
		if t.config.Verbose || t.config.ShoeResults {
			t.logger.WithFields(logrus.Fields{
				"rounds":        e.Rounds,
				"player_payout": e.PlayerPayout,
				"banker_payout": e.BankerPayout,
				"half_payouts":  e.BankerHalfPayouts,
			}).Infof("Shoe %d finished", e.ShoeNumber)
		}

	case events.SessionEnded:
		t.logger.WithFields(logrus.Fields{
			"shoes": e.Shoes,
			"games": e.TotalGames,
		}).Info("Session finished")
	}
}

func (t *Table) debugEnabled() bool {
	return t.logger.Logger.IsLevelEnabled(logrus.DebugLevel)
}

func titleSide(side string) string {
	if side == "banker" {
		return "Banker"
	}
	return "Player"
}
