package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukesour/school-positioning/internal/analysis"
	"github.com/lukesour/school-positioning/internal/config"
	"github.com/lukesour/school-positioning/internal/intake"
	"github.com/lukesour/school-positioning/internal/orchestrator"
	"github.com/lukesour/school-positioning/internal/profile"
	"github.com/lukesour/school-positioning/internal/render"
	"github.com/lukesour/school-positioning/internal/report"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full positioning pipeline end-to-end",
	Long: `Runs the whole session: intake -> analysis -> report rendering -> document export.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runInput          string
	runOutput         string
	runAnalyzeTimeout int
	runExport         bool
)

func init() {
	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Path to applicant intake JSON file")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Output directory for report artifacts")
	runCommand.Flags().IntVar(&runAnalyzeTimeout, "analyze-timeout", 0, "Analyze call timeout in minutes")
	runCommand.Flags().BoolVar(&runExport, "export", false, "Export the rendered report as a paginated PDF (requires Chrome)")

	rootCmd.AddCommand(runCommand)
}

// resolveConfig loads the optional config file and applies flag overrides
// and defaults, shared by the service-facing commands.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if flagConfigPath != "" {
		loaded, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("input") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("service-url") {
		cfg.ServiceURL = flagServiceURL
	}
	if cmd.Flags().Changed("analyze-timeout") {
		cfg.AnalyzeTimeoutMinutes = runAnalyzeTimeout
	}
	if cmd.Flags().Changed("export") {
		cfg.Export = runExport
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flagVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Output:     "out",
		ServiceURL: defaultServiceURL(),
	})
	return cfg, nil
}

func defaultServiceURL() string {
	if url := os.Getenv("SERVICE_URL"); url != "" {
		return url
	}
	return "http://localhost:8000"
}

func newClient(cfg config.Config) (*analysis.Client, error) {
	opts := analysis.DefaultOptions()
	opts.BaseURL = cfg.ServiceURL
	opts.Verbose = cfg.Verbose
	if cfg.AnalyzeTimeoutMinutes > 0 {
		opts.AnalyzeTimeout = time.Duration(cfg.AnalyzeTimeoutMinutes) * time.Minute
	}
	return analysis.NewClient(opts)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("--input is required (or set 'input' in the config file)")
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	// Reference-data warmup is best effort; intake works without it.
	if ref, err := intake.LoadReferenceData(ctx, client, cfg.Verbose); err != nil {
		if cfg.Verbose {
			log.Printf("[RUN] Reference warmup failed, continuing: %v", err)
		}
	} else if cfg.Verbose {
		log.Printf("[RUN] Service knows %d cases", ref.Stats.TotalCases)
	}

	input, err := intake.LoadInput(cfg.Input)
	if err != nil {
		return err
	}

	session := orchestrator.NewSession(client, cfg.Verbose)
	input.Apply(session.Form())

	result, err := session.Submit(ctx)
	if err != nil {
		if verr, ok := err.(*profile.ValidationError); ok {
			for _, fe := range verr.Fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("intake validation failed; fix the fields above and resubmit")
		}
		return fmt.Errorf("%s", analysis.UserMessage(err))
	}

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	reportPath := filepath.Join(cfg.Output, "report.json")
	if err := report.Save(result, reportPath); err != nil {
		return err
	}
	fmt.Printf("Report saved to %s\n", reportPath)

	surfacePath, err := render.WriteSurface(render.Compose(result), cfg.Output, cfg.Verbose)
	if err != nil {
		return err
	}
	fmt.Printf("Report surface written to %s\n", surfacePath)

	if cfg.Export {
		// Export failure is non-fatal: the report view survives and the
		// export can be retried with the export command.
		if pdfPath, pages, err := exportSurface(ctx, surfacePath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\nRetry with: positioning_agent export --surface %s\n", err, surfacePath)
		} else {
			fmt.Printf("Document exported to %s (%d pages)\n", pdfPath, pages)
		}
	}
	return nil
}
