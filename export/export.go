// Package export writes session results as CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lazharichir/baccarat/stats"
)

const (
	PlayerFile = "player.csv"
	BankerFile = "banker.csv"
	RoundsFile = "rounds.csv"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteSeries writes one value per line
func WriteSeries(w io.Writer, values []float64) error {
	cw := csv.NewWriter(w)
	for _, v := range values {
		if err := cw.Write([]string{formatValue(v)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRounds writes the running player and banker ledgers, one round per row
func WriteRounds(w io.Writer, player, banker []float64) error {
	if len(player) != len(banker) {
		return fmt.Errorf("series lengths differ: %d player, %d banker", len(player), len(banker))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"round", "player", "banker"}); err != nil {
		return err
	}
	for i := range player {
		row := []string{strconv.Itoa(i + 1), formatValue(player[i]), formatValue(banker[i])}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFiles writes the per-shoe ledgers (player.csv, banker.csv) and the
// per-round ledgers (rounds.csv) into dir, creating it if needed. Existing
// result files are overwritten; nothing else in dir is touched.
func WriteFiles(dir string, summary stats.Summary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{PlayerFile, func(w io.Writer) error { return WriteSeries(w, summary.PlayerShoeSeries()) }},
		{BankerFile, func(w io.Writer) error { return WriteSeries(w, summary.BankerShoeSeries()) }},
		{RoundsFile, func(w io.Writer) error { return WriteRounds(w, summary.PlayerSeries, summary.BankerSeries) }},
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}
