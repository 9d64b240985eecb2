package cmd

import (
	"context"
	"fmt"

	"spreader-detector/core/config"
	"spreader-detector/core/database"
	"spreader-detector/core/logger"
	"spreader-detector/core/storage"
	"spreader-detector/feature/spreader"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the analyze command
	outputPath    string
	publishReport bool
	recordRun     bool
	showTable     bool
)

// analyzeCmd runs the full pipeline over two files.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <people-file> <meetings-file>",
	Short: "Classify everyone in a roster by infection probability",
	Long: `Reads the people file ("<name> <id> <age>" per line) and the meetings file
(the sick person's id, then "<infector> <infected> <distance> <duration>" per
line), propagates the infection probability through the meetings in order
and writes one line per person, highest probability first.

Examples:
  # Write SpreaderDetectorAnalysis.out in the current directory
  spreader-detector analyze People.in Meetings.in

  # Custom output, printed as a table and uploaded to storage
  spreader-detector analyze People.in Meetings.in -o out.txt --table --publish`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("%w (got %d arguments)", spreader.ErrUsage, len(args))
		}
		return nil
	},
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report path (default from analysis.output_file)")
	analyzeCmd.Flags().BoolVar(&publishReport, "publish", false, "Upload the report to the storage bucket")
	analyzeCmd.Flags().BoolVar(&recordRun, "record", false, "Record the run in the database")
	analyzeCmd.Flags().BoolVar(&showTable, "table", false, "Print the classified roster as a table")

	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Analysis.Validate(); err != nil {
		return fmt.Errorf("invalid analysis config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()

	var client storage.Client
	if publishReport {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	var db *gorm.DB
	if recordRun {
		if db, err = database.Connect(cfg.Database); err != nil {
			return fmt.Errorf("database connection required for --record: %w", err)
		}
	}

	svc := spreader.NewService(client, cfg.Storage.Bucket, logg, db, cfg.Analysis)

	out := outputPath
	if out == "" {
		out = cfg.Analysis.OutputFile
	}

	logg.Info("Analyzing meetings", zap.String("people", args[0]), zap.String("meetings", args[1]))
	analysis, err := svc.AnalyzePaths(args[0], args[1])
	if err != nil {
		return err
	}

	if showTable {
		fmt.Fprintln(cmd.OutOrStdout(), renderExposures(analysis.Exposures))
	}

	if err := deliver(ctx, svc, analysis, out, recordRun, publishReport); err != nil {
		return err
	}

	logg.Info("Analysis completed",
		zap.String("run_id", analysis.RunID),
		zap.Int("people", len(analysis.Exposures)),
		zap.Int("meetings", analysis.Stats.Meetings),
	)
	return nil
}

// deliver records and publishes the analysis, then writes the report. The
// report is only written once every requested sink has accepted the run.
func deliver(ctx context.Context, svc *spreader.Service, analysis *spreader.Analysis, out string, record, publish bool) error {
	if record {
		if err := svc.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to prepare database: %w", err)
		}
		if err := svc.Record(ctx, analysis); err != nil {
			return err
		}
	}

	if publish {
		if _, err := svc.Publish(ctx, analysis); err != nil {
			return err
		}
	}

	return svc.WriteReportFile(out, analysis)
}
