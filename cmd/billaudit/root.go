package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/billaudit/internal/benchmark"
	"github.com/gyeh/billaudit/internal/config"
	"github.com/gyeh/billaudit/internal/exitcode"
	"github.com/gyeh/billaudit/internal/logging"
)

var (
	cfg     = config.Default()
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "billaudit",
	Short: "Medical bill audit and fair-pricing engine",
	Long: "Audits parsed hospital bills against regional fair-price benchmarks " +
		"(Medicare fee schedule for the US, CGHS/PMJAY rates for India) and flags " +
		"overcharges, duplicates, and arithmetic errors.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DataDir, "data-dir", os.Getenv("BILLAUDIT_DATA_DIR"), "Benchmark data directory (or set BILLAUDIT_DATA_DIR)")
	pf.StringVar(&cfgFile, "config", "", "Optional YAML config file")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	pf.StringVar(&cfg.Region, "region", cfg.Region, "Region override: US, IN, or AUTO")
}

// setup applies the config file, validates knobs, and opens the benchmark
// store. It exits on configuration errors since every subcommand needs a
// usable config.
func setup() (zerolog.Logger, *benchmark.Store) {
	log := logging.Setup(cfg.LogFormat, cfg.Debug)

	if cfgFile != "" {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return log, benchmark.Open(cfg.DataDir, log)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
