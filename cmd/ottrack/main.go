package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ottrack/ot-calculator/internal/calculation"
	"github.com/ottrack/ot-calculator/internal/config"
	"github.com/ottrack/ot-calculator/internal/domain"
	"github.com/ottrack/ot-calculator/internal/output"
	"github.com/ottrack/ot-calculator/internal/store"
	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ottrack",
	Short: "Overtime and attendance payroll calculator",
	Long:  "Overtime/attendance tracker for hourly-plus-OT pay under Thai payroll conventions",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "ottrack %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine
}

func loadDocument(filename string) (*domain.Document, error) {
	parser := config.NewInputParser()
	return parser.LoadFromFile(filename)
}

func monthFlag(cmd *cobra.Command) string {
	month, _ := cmd.Flags().GetString("month")
	if month == "" {
		month = timeutil.DefaultMonthValue()
	}
	return month
}

func periodFlag(cmd *cobra.Command) calculation.Period {
	period, _ := cmd.Flags().GetString("period")
	return calculation.Period(period)
}

func writeOut(cmd *cobra.Command, data []byte) error {
	outFile, _ := cmd.Flags().GetString("output")
	if outFile == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outFile, data, 0o644)
}

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [data-file]",
		Short: "Summarize a pay cycle (attendance counts, hours, money)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			engine := newEngine(cmd)
			st := store.New(doc)

			month := monthFlag(cmd)
			period := periodFlag(cmd)
			records := engine.AnnotateRecords(st.Records(), st.Settings())

			report, err := output.BuildReport(records, st.Settings(), month, period)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unsupported format %q (available: %v)", format, output.FormatterNames())
			}
			data, err := f.Format(report)
			if err != nil {
				return err
			}
			return writeOut(cmd, data)
		},
	}
	cmd.Flags().String("month", "", "selected month YYYY-MM (default: current month)")
	cmd.Flags().String("period", "salary", "period kind: salary or ot")
	cmd.Flags().String("format", "console", "output format: console, json, csv, html, pdf")
	cmd.Flags().String("output", "", "write output to a file instead of stdout")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	return cmd
}

func dayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [data-file] [date]",
		Short: "Show the hour and money breakdown for one day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			st := store.New(doc)

			rec, ok := st.Get(args[1])
			if !ok {
				return fmt.Errorf("no record for date %s", timeutil.NormalizeDateStr(args[1]))
			}

			hours := calculation.ComputeNetHours(rec, st.Settings())
			money := calculation.ComputeDayMoney(rec, st.Settings())
			hide := st.Settings().PrivacyHideMoney

			fmt.Printf("Date:        %s (%s, %s)\n", rec.Date, rec.Attendance.Normalized(), money.DayType)
			fmt.Printf("Work:        %s - %s  net %s h\n", rec.WorkStart, rec.WorkEnd, hours.WorkHoursNet.StringFixed(2))
			fmt.Printf("OT:          %s - %s  net %s h\n", rec.OTStart, rec.OTEnd, hours.OTHoursNet.StringFixed(2))
			fmt.Printf("Multipliers: work x%s, OT x%s\n", money.WorkMultiplier.String(), money.OTMultiplier.String())
			fmt.Printf("Normal pay:  %s\n", output.FormatMoney(money.NormalPay, hide))
			fmt.Printf("OT pay:      %s\n", output.FormatMoney(money.OTPay, hide))
			fmt.Printf("Allowances:  %s (meal %s, shift %s, manual %s)\n",
				output.FormatMoney(money.AllowancesDay, hide),
				output.FormatMoney(money.MealAllowance, hide),
				output.FormatMoney(money.ShiftAllowance, hide),
				output.FormatMoney(money.ManualAllowance, hide))
			fmt.Printf("Deductions:  %s\n", output.FormatMoney(money.DeductionsDay, hide))
			fmt.Printf("Gross:       %s\n", output.FormatMoney(money.GrossDay, hide))
			return nil
		},
	}
	return cmd
}

func cycleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle [data-file]",
		Short: "Resolve the salary and OT cycle windows for a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			month := monthFlag(cmd)
			cycles := calculation.ResolveCycles(doc.Settings, month)

			printCycle := func(name string, c domain.CycleContext) {
				fmt.Printf("%-22s %s .. %s (inclusive %s)  pay %s\n",
					name+":", c.Range.DateFrom, c.Range.DateToExclusive,
					timeutil.PrevDate(c.Range.DateToExclusive), c.PayDate)
			}
			fmt.Printf("Selected month: %s (anchor: %s)\n", cycles.Month, doc.Settings.CycleMonthAnchor)
			printCycle("Salary cycle", cycles.Salary)
			printCycle("OT cycle", cycles.OT)
			printCycle("Previous OT cycle", cycles.PreviousOT)
			return nil
		},
	}
	cmd.Flags().String("month", "", "selected month YYYY-MM (default: current month)")
	return cmd
}

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record [data-file] [date]",
		Short: "Create or update the record for a date and save the file",
		Long: "Creates the record from the default shift template when the date is new, " +
			"applies any provided flags, recomputes derived hours, and writes the document back.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			st := store.New(doc)

			date := timeutil.NormalizeDateStr(args[1])
			rec, ok := st.Get(date)
			if !ok {
				rec = domain.NewRecordForDate(date, st.Settings())
			}

			if v, _ := cmd.Flags().GetString("attendance"); v != "" {
				rec.Attendance = domain.Attendance(v)
			}
			if v, _ := cmd.Flags().GetString("day-type"); v != "" {
				rec.DayType = domain.DayType(v)
			}
			if v, _ := cmd.Flags().GetString("shift"); v != "" {
				rec.ShiftType = domain.ShiftType(v)
			}
			if v, _ := cmd.Flags().GetString("work"); v != "" {
				rec.WorkStart, rec.WorkEnd = splitWindow(v)
			}
			if v, _ := cmd.Flags().GetString("ot"); v != "" {
				rec.OTStart, rec.OTEnd = splitWindow(v)
			}
			if v, _ := cmd.Flags().GetString("note"); v != "" {
				rec.Note = v
			}

			saved := st.Upsert(rec)
			if err := config.SaveToFile(args[0], st.Document()); err != nil {
				return err
			}
			fmt.Printf("Saved %s: %s, work %s h, OT %s h\n",
				saved.Date, saved.Attendance,
				saved.Computed.WorkHoursNet.StringFixed(2),
				saved.Computed.OTHoursNet.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().String("attendance", "", "attendance tag: present, off, personal, sick")
	cmd.Flags().String("day-type", "", "day type: normal, holiday, special")
	cmd.Flags().String("shift", "", "shift tag: day, night, custom")
	cmd.Flags().String("work", "", "work window as HH:MM-HH:MM")
	cmd.Flags().String("ot", "", "OT window as HH:MM-HH:MM")
	cmd.Flags().String("note", "", "free-text note")
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [data-file] [target-file]",
		Short: "Write a backup copy of the full document",
		Long: "Re-saves the normalized document to the target path, JSON for .json " +
			"targets and YAML otherwise, with a fresh schema version and export stamp.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			st := store.New(doc)
			if err := config.SaveToFile(args[1], st.Document()); err != nil {
				return err
			}
			fmt.Printf("Exported %d records to %s\n", len(st.Records()), args[1])
			return nil
		},
	}
}

// splitWindow splits "08:00-17:00" into its sides. A missing dash leaves both
// sides empty, which the engine treats as no time entered.
func splitWindow(v string) (string, string) {
	for i := 0; i < len(v); i++ {
		if v[i] == '-' {
			return v[:i], v[i+1:]
		}
	}
	return "", ""
}

func main() {
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(cycleCmd())
	rootCmd.AddCommand(recordCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
