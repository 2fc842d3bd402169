package stats

// Summary is the end-of-session view handed to reporting and export.
type Summary struct {
	Convention        Convention
	TotalGames        int
	PlayerWins        int
	BankerWins        int
	BankerHalfPayouts int
	Ties              int
	Totals            Ledger

	// Running ledgers after each round
	PlayerSeries []float64
	BankerSeries []float64

	// Ledgers at the end of each shoe
	Shoes []ShoeSummary
}

// Summary snapshots the tracker
func (t *Tracker) Summary() Summary {
	return Summary{
		Convention:        t.convention,
		TotalGames:        t.TotalGames,
		PlayerWins:        t.PlayerWins,
		BankerWins:        t.BankerWins,
		BankerHalfPayouts: t.BankerWinsAt6,
		Ties:              t.Ties,
		Totals:            t.session,
		PlayerSeries:      t.PlayerSeries(),
		BankerSeries:      t.BankerSeries(),
		Shoes:             t.Shoes(),
	}
}

// PlayerShoeSeries returns the player ledger of each shoe, in shoe order
func (s Summary) PlayerShoeSeries() []float64 {
	series := make([]float64, len(s.Shoes))
	for i, shoe := range s.Shoes {
		series[i] = shoe.PlayerPayout
	}
	return series
}

// BankerShoeSeries returns the banker ledger of each shoe, in shoe order
func (s Summary) BankerShoeSeries() []float64 {
	series := make([]float64, len(s.Shoes))
	for i, shoe := range s.Shoes {
		series[i] = shoe.BankerPayout
	}
	return series
}
