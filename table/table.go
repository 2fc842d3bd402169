package table

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/config"
	"github.com/lazharichir/baccarat/events"
	"github.com/lazharichir/baccarat/game"
	"github.com/lazharichir/baccarat/stats"
	"github.com/sirupsen/logrus"
)

// TableState represents where the table is in its session
type TableState string

const (
	TableStateIdle            TableState = "idle"
	TableStateSettingUpShoe   TableState = "setting_up_shoe"
	TableStateDealing         TableState = "dealing"
	TableStateShoeComplete    TableState = "shoe_complete"
	TableStateSessionComplete TableState = "session_complete"
)

// Table runs a session of baccarat: a number of shoes, each dealt down to
// the cut card, with every outcome fed to a tracker.
//
// A Table is not safe for concurrent use.
type Table struct {
	ID    string
	State TableState

	config     config.Config
	seed       int64
	rng        *rand.Rand
	logger     *logrus.Entry
	tracker    *stats.Tracker
	eventStore events.EventStore
	shoeIDs    []string

	eventHandlers []events.EventHandler
}

// Option configures a Table
type Option func(*Table)

// WithEventStore appends every event emitted by the table to store
func WithEventStore(store events.EventStore) Option {
	return func(t *Table) {
		t.eventStore = store
	}
}

// WithSeed records the seed rng was created with, for reporting
func WithSeed(seed int64) Option {
	return func(t *Table) {
		t.seed = seed
	}
}

// NewTable creates a table for cfg. rng is the only source of randomness of
// the session; the same seed deals the same session.
func NewTable(cfg config.Config, rng *rand.Rand, logger logrus.FieldLogger, opts ...Option) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("table needs a random source")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	t := &Table{
		ID:            uuid.NewString(),
		State:         TableStateIdle,
		config:        cfg,
		rng:           rng,
		tracker:       stats.NewTracker(cfg.Ledger),
		eventHandlers: []events.EventHandler{},
	}
	t.logger = logger.WithField("session", t.ID)

	for _, opt := range opts {
		opt(t)
	}

	t.RegisterEventHandler(t.narrate)

	return t, nil
}

// NewRand returns a random source for seed. A zero seed is replaced by one
// taken from the clock; the seed actually used is returned.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (t *Table) RegisterEventHandler(handler events.EventHandler) {
	t.eventHandlers = append(t.eventHandlers, handler)
}

// emitEvent stores an event and notifies all registered handlers
func (t *Table) emitEvent(event events.Event) {
	if t.eventStore != nil {
		if err := t.eventStore.Append(event); err != nil {
			t.logger.WithError(err).Warnf("could not store event %s", event.Name())
		}
	}

	for _, handler := range t.eventHandlers {
		handler(event)
	}
}

// Tracker returns the tracker fed by the table
func (t *Table) Tracker() *stats.Tracker {
	return t.tracker
}

// ShoeIDs returns the IDs of the shoes set up so far, in play order
func (t *Table) ShoeIDs() []string {
	ids := make([]string, len(t.shoeIDs))
	copy(ids, t.shoeIDs)
	return ids
}

// Run plays ShoeLimit shoes and returns the session summary. The context is
// checked between rounds; a cancelled run returns the summary so far along
// with the context error.
func (t *Table) Run(ctx context.Context) (stats.Summary, error) {
	if t.State != TableStateIdle {
		return stats.Summary{}, errors.New("table has already started")
	}

	t.emitEvent(events.SessionStarted{
		SessionID:        t.ID,
		NumDecks:         t.config.NumDecks,
		ShoeLimit:        t.config.ShoeLimit,
		CutCardThreshold: t.config.CutCardThreshold,
		Seed:             t.seed,
		At:               time.Now(),
	})

	for shoe := 0; shoe < t.config.ShoeLimit; shoe++ {
		if _, err := t.PlayShoe(ctx); err != nil {
			return t.tracker.Summary(), err
		}
	}

	t.State = TableStateSessionComplete
	summary := t.tracker.Summary()

	t.emitEvent(events.SessionEnded{
		SessionID:  t.ID,
		Shoes:      len(summary.Shoes),
		TotalGames: summary.TotalGames,
		At:         time.Now(),
	})

	return summary, nil
}

// PlayShoe sets up a fresh shoe, shuffles and burns it, then deals rounds
// until no more than CutCardThreshold cards remain.
func (t *Table) PlayShoe(ctx context.Context) (stats.ShoeSummary, error) {
	t.State = TableStateSettingUpShoe

	shoe, err := cards.NewShoe(t.config.NumDecks, t.rng)
	if err != nil {
		return stats.ShoeSummary{}, fmt.Errorf("new shoe: %w", err)
	}
	shoeID := uuid.NewString()
	shoeNumber := t.tracker.StartShoe()
	t.shoeIDs = append(t.shoeIDs, shoeID)

	t.emitEvent(events.ShoeStarted{
		SessionID:  t.ID,
		ShoeID:     shoeID,
		ShoeNumber: shoeNumber,
		Cards:      shoe.Size(),
		At:         time.Now(),
	})

	shoe.Shuffle()
	t.emitEvent(events.ShoeShuffled{
		ShoeID: shoeID,
		Cards:  shoe.Remaining(),
		At:     time.Now(),
	})

	burn, err := shoe.Burn()
	if err != nil {
		return stats.ShoeSummary{}, fmt.Errorf("burn shoe %d: %w", shoeNumber, err)
	}
	t.emitEvent(events.CardsBurned{
		ShoeID:    shoeID,
		BurnCard:  burn.BurnCard,
		Burned:    burn.Burned,
		Remaining: shoe.Remaining(),
		At:        time.Now(),
	})

	t.State = TableStateDealing
	for roundNumber := 1; shoe.Remaining() > t.config.CutCardThreshold; roundNumber++ {
		if err := ctx.Err(); err != nil {
			return t.tracker.CurrentShoe(), err
		}

		outcome, err := t.playRound(shoe, shoeID, roundNumber)
		if err != nil {
			return t.tracker.CurrentShoe(), fmt.Errorf("shoe %d round %d: %w", shoeNumber, roundNumber, err)
		}
		t.tracker.Record(outcome)
	}

	t.State = TableStateShoeComplete
	summary := t.tracker.EndShoe()

	t.emitEvent(events.ShoeEnded{
		SessionID:         t.ID,
		ShoeID:            shoeID,
		ShoeNumber:        summary.Shoe,
		Rounds:            summary.Rounds,
		Remaining:         shoe.Remaining(),
		PlayerPayout:      summary.PlayerPayout,
		BankerPayout:      summary.BankerPayout,
		BankerHalfPayouts: summary.BankerHalfPayouts,
		At:                time.Now(),
	})

	return summary, nil
}

func (t *Table) playRound(shoe *cards.Shoe, shoeID string, roundNumber int) (game.Outcome, error) {
	round := game.NewRound(uuid.NewString(), shoeID, shoe)
	round.RegisterEventHandler(t.emitEvent)

	t.emitEvent(events.RoundStarted{
		ShoeID:      shoeID,
		RoundID:     round.ID,
		RoundNumber: roundNumber,
		Remaining:   shoe.Remaining(),
		At:          time.Now(),
	})

	outcome, err := round.Play()
	round.Collect()
	return outcome, err
}
