package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show benchmark database statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	_, store := setup()

	st := store.Stats()
	fmt.Println("=== benchmark database ===")
	fmt.Printf("Data directory:  %s\n", st.DataDir)
	fmt.Printf("ICD-10 codes:    %d\n", st.ICD10Count)
	fmt.Printf("CPT/HCPCS codes: %d\n", st.CPTHCPCSCount)
	fmt.Printf("Fee schedule:    %d\n", st.FeeScheduleCount)
	fmt.Printf("Indian procedures: %d (cghs=%d pmjay=%d)\n",
		st.ProcedureCount, st.CGHSCount, st.PMJAYCount)
	if st.USSample || st.IndiaSample {
		fmt.Printf("Sample fallback: us=%t india=%t\n", st.USSample, st.IndiaSample)
	}
	return nil
}
