package stats

import (
	"testing"

	"github.com/lazharichir/baccarat/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	playerWin   = game.Outcome{Winner: game.WinnerPlayer, Payout: game.FullPayout, PlayerScore: 8, BankerScore: 3}
	bankerWin   = game.Outcome{Winner: game.WinnerBanker, Payout: game.FullPayout, PlayerScore: 3, BankerScore: 9}
	bankerWinOn = game.Outcome{Winner: game.WinnerBanker, Payout: game.HalfPayout, PlayerScore: 5, BankerScore: 6}
	tie         = game.Outcome{Winner: game.WinnerTie, Payout: game.NoPayout, PlayerScore: 7, BankerScore: 7}
)

func TestTracker_Record(t *testing.T) {
	tracker := NewTracker(ConventionCoupled)
	tracker.StartShoe()

	for _, o := range []game.Outcome{playerWin, bankerWin, bankerWinOn, tie, playerWin} {
		tracker.Record(o)
	}

	assert.Equal(t, 5, tracker.TotalGames)
	assert.Equal(t, 2, tracker.PlayerWins)
	assert.Equal(t, 2, tracker.BankerWins)
	assert.Equal(t, 1, tracker.BankerWinsAt6)
	assert.Equal(t, 1, tracker.Ties)
	assert.Equal(t, tracker.TotalGames, tracker.PlayerWins+tracker.BankerWins+tracker.Ties)
}

func TestTracker_SeriesCoupled(t *testing.T) {
	tracker := NewTracker(ConventionCoupled)
	tracker.StartShoe()

	for _, o := range []game.Outcome{playerWin, bankerWin, bankerWinOn, tie} {
		tracker.Record(o)
	}

	assert.Equal(t, []float64{1, 0, -0.5, -0.5}, tracker.PlayerSeries())
	assert.Equal(t, []float64{-1, 0, 0.5, 0.5}, tracker.BankerSeries())
	assert.Equal(t, Ledger{Player: -0.5, Banker: 0.5}, tracker.Totals())
}

func TestTracker_SeriesIndependent(t *testing.T) {
	tracker := NewTracker(ConventionIndependent)
	tracker.StartShoe()

	for _, o := range []game.Outcome{playerWin, bankerWin, bankerWinOn, tie} {
		tracker.Record(o)
	}

	// a player bet loses a full unit to a banker 6
	assert.Equal(t, []float64{1, 0, -1, -1}, tracker.PlayerSeries())
	assert.Equal(t, []float64{-1, 0, 0.5, 0.5}, tracker.BankerSeries())
	assert.Equal(t, Ledger{Player: -1, Banker: 0.5}, tracker.Totals())
}

func TestConvention_Settle(t *testing.T) {
	tests := []struct {
		name       string
		convention Convention
		outcome    game.Outcome
		player     float64
		banker     float64
	}{
		{"coupled player win", ConventionCoupled, playerWin, 1, -1},
		{"coupled banker win", ConventionCoupled, bankerWin, -1, 1},
		{"coupled banker six", ConventionCoupled, bankerWinOn, -0.5, 0.5},
		{"coupled tie", ConventionCoupled, tie, 0, 0},
		{"independent player win", ConventionIndependent, playerWin, 1, -1},
		{"independent banker win", ConventionIndependent, bankerWin, -1, 1},
		{"independent banker six", ConventionIndependent, bankerWinOn, -1, 0.5},
		{"independent tie", ConventionIndependent, tie, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, banker := tt.convention.Settle(tt.outcome)
			assert.Equal(t, tt.player, player)
			assert.Equal(t, tt.banker, banker)
		})
	}
}

func TestTracker_TieNeverMovesLedgers(t *testing.T) {
	for _, convention := range []Convention{ConventionCoupled, ConventionIndependent} {
		tracker := NewTracker(convention)
		tracker.StartShoe()
		tracker.Record(playerWin)
		before := tracker.Totals()

		tracker.Record(tie)

		assert.Equal(t, before, tracker.Totals(), "%s: a tie pushes both bets", convention)
	}
}

func TestTracker_Shoes(t *testing.T) {
	tracker := NewTracker(ConventionCoupled)

	assert.Equal(t, 1, tracker.StartShoe())
	tracker.Record(playerWin)
	tracker.Record(bankerWinOn)
	first := tracker.EndShoe()

	assert.Equal(t, ShoeSummary{Shoe: 1, Rounds: 2, PlayerPayout: 0.5, BankerPayout: -0.5, BankerHalfPayouts: 1}, first)

	assert.Equal(t, 2, tracker.StartShoe())
	assert.Equal(t, ShoeSummary{Shoe: 2}, tracker.CurrentShoe(), "shoe ledger resets with every shoe")
	tracker.Record(bankerWin)
	second := tracker.EndShoe()

	assert.Equal(t, ShoeSummary{Shoe: 2, Rounds: 1, PlayerPayout: -1, BankerPayout: 1}, second)
	assert.Equal(t, []ShoeSummary{first, second}, tracker.Shoes())

	// session totals carry across shoes
	assert.Equal(t, 3, tracker.TotalGames)
	assert.Equal(t, Ledger{Player: -0.5, Banker: 0.5}, tracker.Totals())
	assert.Len(t, tracker.PlayerSeries(), 3)
}

func TestTracker_Percentages(t *testing.T) {
	tracker := NewTracker(ConventionCoupled)
	tracker.StartShoe()
	for _, o := range []game.Outcome{playerWin, bankerWin, bankerWinOn, tie} {
		tracker.Record(o)
	}

	player, err := tracker.PlayerWinPercent()
	require.NoError(t, err)
	banker, err := tracker.BankerWinPercent()
	require.NoError(t, err)
	ties, err := tracker.TiePercent()
	require.NoError(t, err)
	half, err := tracker.HalfPayoutPercent()
	require.NoError(t, err)

	assert.Equal(t, 25.0, player)
	assert.Equal(t, 50.0, banker)
	assert.Equal(t, 25.0, ties)
	assert.Equal(t, 25.0, half)
	assert.InDelta(t, 100.0, player+banker+ties, 1e-9)
}

func TestTracker_PercentagesWithoutGames(t *testing.T) {
	tracker := NewTracker(ConventionCoupled)

	for _, percent := range []func() (float64, error){
		tracker.PlayerWinPercent,
		tracker.BankerWinPercent,
		tracker.TiePercent,
		tracker.HalfPayoutPercent,
	} {
		value, err := percent()
		assert.ErrorIs(t, err, ErrDivisionUndefined)
		assert.Zero(t, value)
	}
}

func TestTracker_Summary(t *testing.T) {
	tracker := NewTracker(ConventionIndependent)
	tracker.StartShoe()
	tracker.Record(playerWin)
	tracker.Record(bankerWinOn)
	tracker.EndShoe()
	tracker.StartShoe()
	tracker.Record(tie)
	tracker.EndShoe()

	summary := tracker.Summary()

	assert.Equal(t, ConventionIndependent, summary.Convention)
	assert.Equal(t, 3, summary.TotalGames)
	assert.Equal(t, 1, summary.PlayerWins)
	assert.Equal(t, 1, summary.BankerWins)
	assert.Equal(t, 1, summary.BankerHalfPayouts)
	assert.Equal(t, 1, summary.Ties)
	assert.Equal(t, []float64{1, 0, 0}, summary.PlayerSeries)
	assert.Equal(t, []float64{-1, -0.5, -0.5}, summary.BankerSeries)
	assert.Equal(t, []float64{0, 0}, summary.PlayerShoeSeries())
	assert.Equal(t, []float64{-0.5, 0}, summary.BankerShoeSeries())

	// the summary is a snapshot
	summary.PlayerSeries[0] = 99
	assert.Equal(t, 1.0, tracker.PlayerSeries()[0])
}

func TestParseConvention(t *testing.T) {
	c, err := ParseConvention("coupled")
	require.NoError(t, err)
	assert.Equal(t, ConventionCoupled, c)

	c, err = ParseConvention("independent")
	require.NoError(t, err)
	assert.Equal(t, ConventionIndependent, c)

	_, err = ParseConvention("opposite")
	assert.Error(t, err)
}
