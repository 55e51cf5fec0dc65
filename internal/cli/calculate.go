package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/studiopayroll/payroll-engine-go/internal/config"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/payroll"
	payrollService "github.com/studiopayroll/payroll-engine-go/internal/service/payroll"
)

var (
	calculateFile   string
	calculateFormat string
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute an itemized pay breakdown from a JSON input record",
	Args:  cobra.NoArgs,
	RunE:  runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&calculateFile, "file", "f", "", "Path to the JSON input record (required)")
	calculateCmd.Flags().StringVar(&calculateFormat, "format", "table", "Output format: table, json")
	_ = calculateCmd.MarkFlagRequired("file")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(calculateFile)
	if err != nil {
		return err
	}

	var req payroll.CalculateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parsing %s: %w", calculateFile, err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	svc := payrollService.NewPayrollService(cfg.Rates())
	in := payrollService.AssembleInput(svc, req.ToInput(), req.Filed(), req.Period())
	breakdown, err := svc.Calculate(in)
	if err != nil {
		return err
	}

	switch calculateFormat {
	case "json":
		out, err := json.MarshalIndent(breakdown, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default: // table
		printBreakdown(breakdown)
	}

	return nil
}

func printBreakdown(b payroll.Breakdown) {
	fmt.Println("Earnings")
	fmt.Println("--------------------------------")
	printLine("Daily rate", b.DailyRate)
	printLine("Cutoff pay", b.CutoffPay)
	printLine("OB pay", b.OBPay)
	printLine("OT pay", b.OTPay)
	printLine("Night diff pay", b.NightDiffPay)
	printLine("Rest-day OT pay", b.RestDayOTPay)
	printLine("Holiday 30% pay", b.Holiday30Pay)
	printLine("Holiday 2x pay", b.HolidayDoublePay)
	printLine("Holiday OT 2x pay", b.HolidayOTDoublePay)
	printLine("Gross earnings", b.GrossEarnings)
	fmt.Println()
	fmt.Println("Deductions")
	fmt.Println("--------------------------------")
	printLine("SSS", b.SSS)
	printLine("Pag-IBIG", b.PagIbig)
	printLine("PhilHealth", b.PhilHealth)
	printLine("Cash advance", b.CashAdvanceDeduction)
	printLine("Tardiness", b.TardinessDeduction)
	printLine("Total deductions", b.TotalDeductions)
	fmt.Println("--------------------------------")
	printLine("Net pay", b.NetPay)
}

func printLine(label string, v decimal.Decimal) {
	fmt.Printf("%-20s%12s\n", label, v.StringFixed(2))
}
