package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/billaudit/internal/audit"
	"github.com/gyeh/billaudit/internal/exitcode"
	"github.com/gyeh/billaudit/internal/match"
	"github.com/gyeh/billaudit/internal/model"
)

var (
	auditFile string
	auditJSON bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a parsed bill JSON file",
	RunE:  runAudit,
}

func init() {
	f := auditCmd.Flags()
	f.StringVar(&auditFile, "file", "", "Path to parsed bill JSON (required)")
	f.BoolVar(&auditJSON, "json", false, "Emit the raw audit result as JSON")
	_ = auditCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	log, store := setup()

	data, err := os.ReadFile(auditFile)
	if err != nil {
		log.Error().Err(err).Msg("cannot read bill file")
		os.Exit(exitcode.InputError)
	}
	var bill model.ParsedBill
	if err := json.Unmarshal(data, &bill); err != nil {
		log.Error().Err(err).Msg("cannot parse bill file")
		os.Exit(exitcode.InputError)
	}

	matcher := match.New(store, cfg.FuzzyThreshold)
	engine := audit.New(store, matcher, log, &cfg)
	result := engine.Audit(&bill)

	if auditJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("cannot encode audit result")
			os.Exit(exitcode.InputError)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(audit.Summary(result))
	return nil
}
