package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lazharichir/baccarat/stats"
	"github.com/lazharichir/baccarat/table"
)

func formatPercent(p float64, err error) string {
	if errors.Is(err, stats.ErrDivisionUndefined) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", p)
}

// report prints the end of session results, preceded by one line per
// replayed shoe when shoes is not empty.
func report(w io.Writer, summary stats.Summary, shoes []table.ShoeReplay, tracker *stats.Tracker) error {
	var b strings.Builder

	for _, shoe := range shoes {
		fmt.Fprintf(&b, "Shoe %d: burned %d (%s), %d rounds, %d naturals, player %d / banker %d / tie %d, player %+.1f, banker %+.1f, %d paid half\n",
			shoe.ShoeNumber, shoe.BurnedCards, shoe.BurnCard, shoe.Rounds, shoe.Naturals,
			shoe.PlayerWins, shoe.BankerWins, shoe.Ties,
			shoe.PlayerPayout, shoe.BankerPayout, shoe.HalfPayouts)
	}
	if len(shoes) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total games = %d\n", summary.TotalGames)
	fmt.Fprintf(&b, "Player win = %d : %s\n", summary.PlayerWins, formatPercent(tracker.PlayerWinPercent()))
	fmt.Fprintf(&b, "Banker win = %d : %s\n", summary.BankerWins, formatPercent(tracker.BankerWinPercent()))
	fmt.Fprintf(&b, "Banker paid half = %d : %s\n", summary.BankerHalfPayouts, formatPercent(tracker.HalfPayoutPercent()))
	fmt.Fprintf(&b, "Tied games = %d : %s\n", summary.Ties, formatPercent(tracker.TiePercent()))
	fmt.Fprintf(&b, "Player only bet payout (%s) : %+.1f\n", tracker.Convention(), summary.Totals.Player)
	fmt.Fprintf(&b, "Banker only bet payout : %+.1f\n", summary.Totals.Banker)

	_, err := io.WriteString(w, b.String())
	return err
}
