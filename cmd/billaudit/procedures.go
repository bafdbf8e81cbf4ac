package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/billaudit/internal/exitcode"
	"github.com/gyeh/billaudit/internal/match"
	"github.com/gyeh/billaudit/internal/pricing"
)

var proceduresLimit int

var proceduresCmd = &cobra.Command{
	Use:   "procedures",
	Short: "Indian procedure lookups (CGHS/PMJAY)",
}

var proceduresSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search procedures by description",
	Args:  cobra.ExactArgs(1),
	RunE:  runProceduresSearch,
}

var proceduresCompareCmd = &cobra.Command{
	Use:   "compare <description>",
	Short: "Show expected prices across hospital settings",
	Args:  cobra.ExactArgs(1),
	RunE:  runProceduresCompare,
}

func init() {
	proceduresSearchCmd.Flags().IntVar(&proceduresLimit, "limit", 10, "Maximum number of results")
	proceduresCmd.AddCommand(proceduresSearchCmd)
	proceduresCmd.AddCommand(proceduresCompareCmd)
	rootCmd.AddCommand(proceduresCmd)
}

func runProceduresSearch(cmd *cobra.Command, args []string) error {
	log, store := setup()

	matcher := match.New(store, cfg.FuzzyThreshold)
	matches, err := matcher.Search(args[0], proceduresLimit)
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		os.Exit(exitcode.UsageError)
	}

	for _, m := range matches {
		p := m.Procedure
		fmt.Printf("%3d  %-50s %-12s cghs=₹%.0f pmjay=₹%.0f\n",
			m.Score, p.Description, p.Source, p.CGHSRate, p.PMJAYRate)
	}
	return nil
}

func runProceduresCompare(cmd *cobra.Command, args []string) error {
	log, store := setup()

	matcher := match.New(store, cfg.FuzzyThreshold)
	m, err := matcher.Best(args[0])
	if err != nil {
		log.Error().Err(err).Msg("lookup failed")
		os.Exit(exitcode.UsageError)
	}
	if m == nil {
		fmt.Printf("No procedure matching %q above threshold %d.\n", args[0], cfg.FuzzyThreshold)
		return nil
	}

	low, median, high := m.Procedure.Band()
	base := low
	if base == 0 {
		base = median
	}

	fmt.Printf("Procedure:   %s (match %d%%)\n", m.Procedure.Description, m.Score)
	fmt.Printf("Source:      %s\n", m.Procedure.Source)
	if m.Procedure.CGHSRate > 0 {
		fmt.Printf("CGHS rate:   ₹%.0f\n", m.Procedure.CGHSRate)
	}
	if m.Procedure.PMJAYRate > 0 {
		fmt.Printf("PMJAY rate:  ₹%.0f\n", m.Procedure.PMJAYRate)
	}
	fmt.Printf("Fair band:   ₹%.0f - ₹%.0f (median ₹%.0f)\n\n", low, high, median)

	fmt.Println("Expected price by setting:")
	for _, setting := range []string{"government", "cghs_empaneled", "private", "nabh_accredited", "corporate"} {
		expected := base * pricing.HospitalMultiplier(setting)
		fmt.Printf("  %-16s ₹%.0f (metro: ₹%.0f)\n",
			setting, expected, expected*pricing.CityMultiplier("metro"))
	}
	return nil
}
