package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studiopayroll/payroll-engine-go/internal/config"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	sheetService "github.com/studiopayroll/payroll-engine-go/internal/service/sheet"
	timecardService "github.com/studiopayroll/payroll-engine-go/internal/service/timecard"
)

var (
	timecardFile   string
	timecardStart  string
	timecardEnd    string
	timecardFormat string
)

var timecardCmd = &cobra.Command{
	Use:   "timecard",
	Short: "Summarize a cutoff timecard from a JSON or XLSX file",
	Long: `Summarize a cutoff timecard. A .json file is read as a summary request
(punches plus filed requests); a .xlsx file is read as a biometric export,
in which case --start and --end bound the cutoff.`,
	Args: cobra.NoArgs,
	RunE: runTimecard,
}

func init() {
	timecardCmd.Flags().StringVarP(&timecardFile, "file", "f", "", "Path to the punches file (required)")
	timecardCmd.Flags().StringVar(&timecardStart, "start", "", "Cutoff start date (YYYY-MM-DD, xlsx input)")
	timecardCmd.Flags().StringVar(&timecardEnd, "end", "", "Cutoff end date (YYYY-MM-DD, xlsx input)")
	timecardCmd.Flags().StringVar(&timecardFormat, "format", "table", "Output format: table, json")
	_ = timecardCmd.MarkFlagRequired("file")
}

func runTimecard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	svc := timecardService.NewTimecardService(cfg.WorkSchedule())

	var summary timecard.CutoffSummary
	if strings.HasSuffix(strings.ToLower(timecardFile), ".xlsx") {
		summary, err = summarizeSheet(svc)
	} else {
		summary, err = summarizeJSON(svc)
	}
	if err != nil {
		return err
	}

	switch timecardFormat {
	case "json":
		out, err := json.MarshalIndent(timecard.SummaryResponse{
			TotalHours: summary.TotalHours,
			TotalDays:  summary.TotalDays,
			RDOTHours:  summary.RDOTHours,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default: // table
		fmt.Println("Cutoff summary")
		fmt.Println("--------------------------------")
		fmt.Printf("%-20s%12.2f\n", "Total hours", summary.TotalHours)
		fmt.Printf("%-20s%12.3f\n", "Total days", summary.TotalDays)
		fmt.Printf("%-20s%12.2f\n", "RDOT hours", summary.RDOTHours)
	}

	return nil
}

func summarizeJSON(svc timecard.TimecardService) (timecard.CutoffSummary, error) {
	data, err := os.ReadFile(timecardFile)
	if err != nil {
		return timecard.CutoffSummary{}, err
	}

	var req timecard.SummaryRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return timecard.CutoffSummary{}, fmt.Errorf("parsing %s: %w", timecardFile, err)
	}
	if err := req.Validate(); err != nil {
		return timecard.CutoffSummary{}, err
	}

	return svc.SummarizeCutoff(req.Rows(), req.Filed(), req.FixedOut(), req.Period()), nil
}

func summarizeSheet(svc timecard.TimecardService) (timecard.CutoffSummary, error) {
	f, err := os.Open(timecardFile)
	if err != nil {
		return timecard.CutoffSummary{}, err
	}
	defer f.Close()

	rows, skipped, err := sheetService.NewSheetService().ParseAttendance(f)
	if err != nil {
		return timecard.CutoffSummary{}, err
	}
	if len(skipped) > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d malformed sheet rows: %v\n", len(skipped), skipped)
	}

	var period timecard.Period
	if timecardStart != "" || timecardEnd != "" {
		period, err = timecard.NewPeriod(timecardStart, timecardEnd)
		if err != nil {
			return timecard.CutoffSummary{}, err
		}
	}
	return svc.SummarizeCutoff(rows, nil, nil, period), nil
}
