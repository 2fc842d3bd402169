package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/game"
	"github.com/lazharichir/baccarat/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment variable read by Load, e.g. BACCARAT_NUM_DECKS.
const EnvPrefix = "BACCARAT"

// The largest burn is a King: the burn card plus thirteen more.
const maxBurn = 14

const (
	KeyNumDecks         = "num-decks"
	KeyShoeLimit        = "shoe-limit"
	KeyCutCardThreshold = "cut-card"
	KeySeed             = "seed"
	KeyVerbose          = "verbose"
	KeyShoeResults      = "shoe-results"
	KeyExport           = "export-results"
	KeyOutputDir        = "output-dir"
	KeyLogLevel         = "log-level"
	KeyLedger           = "ledger"
)

// Config holds the settings of a simulation run
type Config struct {
	NumDecks         int
	ShoeLimit        int
	CutCardThreshold int
	Seed             int64 // 0 picks a seed from the clock
	Verbose          bool
	ShoeResults      bool
	Export           bool
	OutputDir        string
	LogLevel         string
	Ledger           stats.Convention
}

// Default returns the settings used when nothing else is configured
func Default() Config {
	return Config{
		NumDecks:         8,
		ShoeLimit:        10,
		CutCardThreshold: 30,
		Seed:             0,
		Verbose:          false,
		ShoeResults:      false,
		Export:           false,
		OutputDir:        "last_run",
		LogLevel:         "info",
		Ledger:           stats.ConventionCoupled,
	}
}

// Validate checks the settings and returns an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	if c.NumDecks < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, KeyNumDecks, c.NumDecks)
	}
	if c.ShoeLimit < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, KeyShoeLimit, c.ShoeLimit)
	}

	// A round only starts with more than CutCardThreshold cards left, so it can always finish.
	if c.CutCardThreshold < game.MaxCardsPerRound-1 {
		return fmt.Errorf("%w: %s must be at least %d, got %d", ErrInvalidConfig, KeyCutCardThreshold, game.MaxCardsPerRound-1, c.CutCardThreshold)
	}
	if limit := c.NumDecks*cards.DeckSize - maxBurn; c.CutCardThreshold >= limit {
		return fmt.Errorf("%w: %s must be below %d for %d decks, got %d", ErrInvalidConfig, KeyCutCardThreshold, limit, c.NumDecks, c.CutCardThreshold)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyLogLevel, err)
	}
	if _, err := stats.ParseConvention(string(c.Ledger)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyLedger, err)
	}
	if c.Export && strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("%w: %s is required to export results", ErrInvalidConfig, KeyOutputDir)
	}

	return nil
}

// BindFlags registers the command-line flags on flags and binds them to v
func BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	d := Default()

	flags.Int(KeyNumDecks, d.NumDecks, "how many complete decks in a shoe")
	flags.Int(KeyShoeLimit, d.ShoeLimit, "number of shoes before reporting")
	flags.Int(KeyCutCardThreshold, d.CutCardThreshold, "end the shoe once this many cards or fewer remain")
	flags.Int64(KeySeed, d.Seed, "random seed; 0 seeds from the clock")
	flags.BoolP(KeyVerbose, "v", d.Verbose, "narrate every round")
	flags.Bool(KeyShoeResults, d.ShoeResults, "show end of shoe results")
	flags.Bool(KeyExport, d.Export, "write csv files of the results")
	flags.String(KeyOutputDir, d.OutputDir, "directory for exported results")
	flags.String(KeyLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	flags.String(KeyLedger, string(d.Ledger), "how a banker 6 settles the player ledger (coupled, independent)")

	return v.BindPFlags(flags)
}

// Load reads the configuration from defaults, the given .env files (missing
// files are skipped), BACCARAT_* environment variables and any flags bound
// to v, in increasing order of precedence. The result is validated.
func Load(v *viper.Viper, envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	d := Default()
	v.SetDefault(KeyNumDecks, d.NumDecks)
	v.SetDefault(KeyShoeLimit, d.ShoeLimit)
	v.SetDefault(KeyCutCardThreshold, d.CutCardThreshold)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyShoeResults, d.ShoeResults)
	v.SetDefault(KeyExport, d.Export)
	v.SetDefault(KeyOutputDir, d.OutputDir)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLedger, string(d.Ledger))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var err error
	cfg := Config{
		OutputDir: v.GetString(KeyOutputDir),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		Ledger:    stats.Convention(strings.ToLower(v.GetString(KeyLedger))),
	}
	if cfg.NumDecks, err = getInt(v, KeyNumDecks); err != nil {
		return Config{}, err
	}
	if cfg.ShoeLimit, err = getInt(v, KeyShoeLimit); err != nil {
		return Config{}, err
	}
	if cfg.CutCardThreshold, err = getInt(v, KeyCutCardThreshold); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = cast.ToInt64E(v.Get(KeySeed)); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeySeed, err)
	}
	if cfg.Verbose, err = getBool(v, KeyVerbose); err != nil {
		return Config{}, err
	}
	if cfg.ShoeResults, err = getBool(v, KeyShoeResults); err != nil {
		return Config{}, err
	}
	if cfg.Export, err = getBool(v, KeyExport); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// getInt reads key strictly; viper's GetInt turns malformed values into 0
func getInt(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func getBool(v *viper.Viper, key string) (bool, error) {
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return b, nil
}
