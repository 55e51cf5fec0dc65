package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "payrollctl",
	Short: "payrollctl – offline payroll preview computations",
	Long: `payrollctl runs the payroll engine against local files: an itemized
pay breakdown from a JSON input record, or a cutoff timecard summary from
JSON punches or a biometric XLSX export. Nothing is stored anywhere.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(timecardCmd)
}
