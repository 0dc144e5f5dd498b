package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudywalnut/ai-production-scheduler/config"
	"github.com/cloudywalnut/ai-production-scheduler/core/model"
	"github.com/cloudywalnut/ai-production-scheduler/core/scheduler"
	"github.com/cloudywalnut/ai-production-scheduler/infra/logger"
	"github.com/cloudywalnut/ai-production-scheduler/pkg/export"
)

var (
	scenesPath   string
	planOut      string
	planFormat   string
	flagBudget   float64
	flagStrategy string
	flagStrict   bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Pack a scene list into shooting days",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVarP(&scenesPath, "scenes", "s", "", "scene list JSON file (required)")
	scheduleCmd.Flags().StringVarP(&planOut, "out", "o", "", "output file (default stdout)")
	scheduleCmd.Flags().StringVarP(&planFormat, "format", "f", "json", "output format: json or csv")
	scheduleCmd.Flags().Float64Var(&flagBudget, "budget", 0, "override day budget in hours")
	scheduleCmd.Flags().StringVar(&flagStrategy, "strategy", "", "override sorting strategy: location or cast")
	scheduleCmd.Flags().BoolVar(&flagStrict, "strict", false, "never exceed the day budget")
	if err := scheduleCmd.MarkFlagRequired("scenes"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	schedCfg := cfg.Scheduler
	if flagBudget > 0 {
		schedCfg.DayBudgetHours = flagBudget
	}
	if flagStrategy != "" {
		schedCfg.Strategy = flagStrategy
	}
	if flagStrict {
		schedCfg.StrictBudget = true
	}

	scenes, err := readScenes(scenesPath)
	if err != nil {
		return err
	}

	logg := logger.New("schedule-command")
	days, err := scheduler.Schedule(schedCfg, scenes, logg)
	if err != nil {
		return err
	}

	out := os.Stdout
	if planOut != "" {
		f, cerr := os.Create(planOut)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer f.Close()
		out = f
	}
	switch planFormat {
	case "json":
		err = export.WriteJSON(out, days)
	case "csv":
		err = export.WriteCSV(out, days)
	default:
		return fmt.Errorf("unknown format %q", planFormat)
	}
	if err != nil {
		return err
	}

	sum := scheduler.Summarize(days, schedCfg.DayBudgetHours)
	logg.Infof("packed %d scenes into %d days (%.1fh total, %.0f%% utilization)",
		sum.Scenes, sum.Days, sum.TotalHours, sum.Utilization*100)
	return nil
}

// readScenes accepts either a bare JSON array of scenes or the
// {"scenes": [...]} envelope the extractor produces.
func readScenes(path string) ([]model.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenes: %w", err)
	}
	var scenes []model.Scene
	if err := json.Unmarshal(data, &scenes); err == nil {
		return scenes, nil
	}
	var batch model.SceneBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse scenes: %w", err)
	}
	return batch.Scenes, nil
}
