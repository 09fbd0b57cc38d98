package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukesour/school-positioning/internal/intake"
)

// Thin service-facing commands: liveness, corpus stats, reference pick
// lists, single-case detail, and the corpus refresh trigger.

var healthCommand = &cobra.Command{
	Use:   "health",
	Short: "Probe the analysis service liveness endpoint",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		status, err := client.Health(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Service status: %s\n", status.Status)
		return nil
	},
}

var statsCommand = &cobra.Command{
	Use:   "stats",
	Short: "Show analysis service corpus statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		stats, err := client.Stats(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Total cases: %d\n", stats.TotalCases)
		printCounts("Top countries", stats.Countries)
		printCounts("Top universities", stats.Universities)
		return nil
	},
}

var referenceCommand = &cobra.Command{
	Use:   "reference",
	Short: "Fetch the intake reference data (universities, majors, stats)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		ref, err := intake.LoadReferenceData(context.Background(), client, cfg.Verbose)
		if err != nil {
			return err
		}
		fmt.Printf("Universities (%d):\n", len(ref.Universities))
		for _, u := range ref.Universities {
			fmt.Printf("  %s\n", u)
		}
		fmt.Printf("Majors (%d):\n", len(ref.Majors))
		for _, m := range ref.Majors {
			fmt.Printf("  %s\n", m)
		}
		return nil
	},
}

var caseCommand = &cobra.Command{
	Use:   "case <id>",
	Short: "Fetch one comparable case by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("case id must be an integer: %s", args[0])
		}
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		detail, err := client.CaseDetail(context.Background(), id)
		if err != nil {
			return err
		}
		fmt.Printf("Case %d: %s, %s\n", detail.ID, detail.AdmittedUniversity, detail.AdmittedProgram)
		if detail.UndergraduateUniversity != "" {
			fmt.Printf("  Undergraduate: %s, %s\n", detail.UndergraduateUniversity, detail.UndergraduateMajor)
		}
		if detail.GPA != "" {
			fmt.Printf("  GPA: %s\n", detail.GPA)
		}
		if detail.KeyExperience != "" {
			fmt.Printf("  Key experience: %s\n", detail.KeyExperience)
		}
		return nil
	},
}

var refreshCommand = &cobra.Command{
	Use:   "refresh-data",
	Short: "Trigger a service-side refresh of the similarity corpus",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		if err := client.RefreshData(context.Background()); err != nil {
			return err
		}
		fmt.Println("Data refresh started")
		return nil
	},
}

func printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return counts[keys[i]] > counts[keys[j]] })

	fmt.Printf("%s:\n", title)
	for _, k := range keys {
		fmt.Printf("  %s: %d\n", k, counts[k])
	}
}

func init() {
	rootCmd.AddCommand(healthCommand, statsCommand, referenceCommand, caseCommand, refreshCommand)
}
