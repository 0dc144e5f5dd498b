package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cloudywalnut/ai-production-scheduler/config"
	coreextract "github.com/cloudywalnut/ai-production-scheduler/core/extract"
	"github.com/cloudywalnut/ai-production-scheduler/core/model"
	"github.com/cloudywalnut/ai-production-scheduler/core/scheduler"
	"github.com/cloudywalnut/ai-production-scheduler/infra/extract"
	"github.com/cloudywalnut/ai-production-scheduler/infra/logger"
	"github.com/cloudywalnut/ai-production-scheduler/infra/splitter"
	"github.com/cloudywalnut/ai-production-scheduler/pkg/export"
)

var (
	docPath      string
	scenesOut    string
	alsoSchedule bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract scene breakdowns from a screenplay document",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&docPath, "doc", "d", "", "screenplay file, PDF or plain text (required)")
	extractCmd.Flags().StringVarP(&scenesOut, "out", "o", "", "output file (default stdout)")
	extractCmd.Flags().BoolVar(&alsoSchedule, "schedule", false, "pack the extracted scenes into days")
	if err := extractCmd.MarkFlagRequired("doc"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logg := logger.New("extract-command")
	client, err := extract.New(cfg.Extractor, logg)
	if err != nil {
		return fmt.Errorf("extractor: %w", err)
	}
	split, err := splitter.New(cfg.Splitter, logg)
	if err != nil {
		return fmt.Errorf("splitter: %w", err)
	}

	doc, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	fragments, err := split.Split(doc)
	if err != nil {
		return fmt.Errorf("split document: %w", err)
	}

	scenes, failures := coreextract.ExtractAll(ctx, client, fragments, nil, logg)
	if failures > 0 {
		logg.Warnf("%d of %d fragments failed extraction", failures, len(fragments))
	}
	if len(scenes) == 0 {
		return fmt.Errorf("no scenes extracted from %s", docPath)
	}

	out := os.Stdout
	if scenesOut != "" {
		f, cerr := os.Create(scenesOut)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer f.Close()
		out = f
	}

	if alsoSchedule {
		days, serr := scheduler.Schedule(cfg.Scheduler, scenes, logg)
		if serr != nil {
			return serr
		}
		return export.WriteJSON(out, days)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(model.SceneBatch{Scenes: scenes})
}
