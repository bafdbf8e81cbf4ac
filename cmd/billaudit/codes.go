package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/billaudit/internal/benchmark"
	"github.com/gyeh/billaudit/internal/exitcode"
)

var (
	codesType  string
	codesLimit int
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "US medical code lookups (ICD-10, CPT, HCPCS)",
}

var codesValidateCmd = &cobra.Command{
	Use:   "validate <code>",
	Short: "Validate a code and show its benchmark entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCodesValidate,
}

var codesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search codes by description substring",
	Args:  cobra.ExactArgs(1),
	RunE:  runCodesSearch,
}

func init() {
	codesSearchCmd.Flags().StringVar(&codesType, "type", "", "Filter by code type: icd10, cpt, or hcpcs")
	codesSearchCmd.Flags().IntVar(&codesLimit, "limit", 10, "Maximum number of results")
	codesCmd.AddCommand(codesValidateCmd)
	codesCmd.AddCommand(codesSearchCmd)
	rootCmd.AddCommand(codesCmd)
}

func runCodesValidate(cmd *cobra.Command, args []string) error {
	_, store := setup()

	info := store.ValidateCode(args[0])
	fmt.Printf("Code:        %s\n", info.Code)
	fmt.Printf("Type:        %s\n", info.Type)
	fmt.Printf("Valid:       %t\n", info.Valid)
	fmt.Printf("Description: %s\n", info.Description)
	if info.Category != "" {
		fmt.Printf("Category:    %s\n", info.Category)
	}
	if price, ok := store.FairPrice(info.Code); ok {
		fmt.Printf("Fair price:  $%.2f ($%.2f - $%.2f)\n",
			price.FairMedian, price.FairLow, price.FairHigh)
	}
	return nil
}

func runCodesSearch(cmd *cobra.Command, args []string) error {
	log, store := setup()

	var filter benchmark.CodeType
	switch codesType {
	case "":
	case "icd10", "cpt", "hcpcs":
		filter = benchmark.CodeType(codesType)
	default:
		log.Error().Str("type", codesType).Msg("unknown code type filter")
		os.Exit(exitcode.UsageError)
	}

	results := store.SearchCodes(args[0], filter, codesLimit)
	if len(results) == 0 {
		fmt.Println("No matching codes found.")
		return nil
	}
	for _, r := range results {
		fmt.Printf("%-8s %-6s %s\n", r.Code, r.Type, r.Description)
	}
	return nil
}
