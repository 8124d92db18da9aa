package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/internal/wellbeing"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a user's check-ins, statistics and burnout risk",
	Long: `Print a user's recent check-ins as a table, followed by their statistics and
burnout risk prediction. The report is read-only and records no alerts.`,
	RunE: runReport,
}

var (
	reportUser string
	reportDays int
)

func init() {
	reportCmd.Flags().StringVar(&reportUser, "user", "", "User ID to report on (required)")
	reportCmd.Flags().IntVar(&reportDays, "days", 30, "Number of days to look back")
	_ = reportCmd.MarkFlagRequired("user")
}

var (
	criticalColor = color.New(color.FgRed, color.Bold)
	highColor     = color.New(color.FgYellow, color.Bold)
	moderateColor = color.New(color.FgCyan)
	lowColor      = color.New(color.FgGreen)
)

func colorLevel(level models.RiskLevel) string {
	switch level {
	case models.RiskCritical:
		return criticalColor.Sprint(level)
	case models.RiskHigh:
		return highColor.Sprint(level)
	case models.RiskModerate:
		return moderateColor.Sprint(level)
	default:
		return lowColor.Sprint(level)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportDays <= 0 {
		return fmt.Errorf("--days must be positive")
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := openDataLayer(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer data.Close()

	end := models.Today()
	start := end.AddDays(-reportDays)
	checkins, err := data.checkinRepo.ListByUser(cmd.Context(), reportUser, &start, &end)
	if err != nil {
		return fmt.Errorf("failed to load checkins: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "WorkWell report for %s, %s to %s\n\n", reportUser, start, end)

	if err := renderCheckins(out, checkins); err != nil {
		return err
	}
	renderStatistics(out, wellbeing.ComputeStatistics(checkins))
	renderPrediction(out, wellbeing.PredictRisk(reportUser, checkins))
	return nil
}

func optionalFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func optionalString(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// renderCheckins prints one row per check-in. The Risk column is the level a
// single day would score on its own.
func renderCheckins(w io.Writer, checkins []models.Checkin) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Stress", "Worked", "Slept", "Sentiment", "Wellbeing", "Risk"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var rows [][]string
	for _, c := range checkins {
		day := wellbeing.Classify(wellbeing.ScoreRisk(wellbeing.Aggregate([]models.Checkin{c})))
		rows = append(rows, []string{
			c.CheckinDate.String(),
			strconv.Itoa(c.StressLevel),
			strconv.FormatFloat(c.HoursWorked, 'f', 1, 64),
			optionalFloat(c.HoursSlept),
			optionalString(c.Sentiment),
			optionalFloat(c.WellbeingScore),
			colorLevel(day),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func renderStatistics(w io.Writer, s models.Statistics) {
	fmt.Fprintf(w, "\nCheck-ins:          %d\n", s.TotalCheckins)
	fmt.Fprintf(w, "Average stress:     %.2f\n", s.AverageStress)
	fmt.Fprintf(w, "Average worked:     %.2f h\n", s.AverageHoursWorked)
	fmt.Fprintf(w, "Average slept:      %.2f h\n", s.AverageHoursSlept)
	fmt.Fprintf(w, "Average wellbeing:  %.2f\n", s.AverageWellbeingScore)
	for _, label := range slices.Sorted(maps.Keys(s.SentimentDistribution)) {
		fmt.Fprintf(w, "  %-16s  %d\n", label, s.SentimentDistribution[label])
	}
}

func renderPrediction(w io.Writer, p models.RiskPrediction) {
	fmt.Fprintf(w, "\nBurnout risk: %s (%.1f)\n", colorLevel(p.RiskLevel), p.RiskScore)
	fmt.Fprintf(w, "%s\n", p.Description)
	for _, r := range p.Recommendations {
		fmt.Fprintf(w, "  - %s\n", r)
	}
}
