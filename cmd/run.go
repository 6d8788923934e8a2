package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerwiz/internal/app"
	"github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/config"
	"github.com/abhisek/careerwiz/internal/llm"
	"github.com/abhisek/careerwiz/internal/report"
	"github.com/abhisek/careerwiz/internal/store"
)

// runApp loads configuration, builds the question source and evaluator, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	opts := app.Options{
		Logger:  log,
		Timeout: cfg.LLM.Timeout,
		RunID:   uuid.New().String(),
		Splash:  !noSplash,
	}

	if cfg.UseLLM() {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		src, ev, err := buildCollaborators(ctx, cfg, st.EventRepo(), log)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
			fmt.Fprintln(os.Stderr, "Using the built-in questions and placeholder report.")
			log.Warn("llm provider unavailable, using static content", zap.Error(err))
		} else {
			opts.Source = src
			opts.Evaluator = ev
		}
	}

	return app.Run(ctx, opts)
}

// buildCollaborators creates LLM-backed question and report collaborators
// that fall back to static content on failure.
func buildCollaborators(ctx context.Context, cfg *config.Config, repo store.EventRepo, log *zap.Logger) (assessment.Source, report.Evaluator, error) {
	provider, err := llm.NewProvider(ctx, cfg.LLM, repo, log,
		llm.Fixture{Schema: assessment.QuestionsSchema, Content: assessment.SampleResponse()},
		llm.Fixture{Schema: report.ReportSchema, Content: report.SampleResponse()},
	)
	if err != nil {
		return nil, nil, err
	}

	srcCfg := assessment.DefaultLLMConfig()
	srcCfg.Count = cfg.Content.Questions

	src := assessment.WithFallback(assessment.NewLLMSource(provider, srcCfg), assessment.StaticSource{}, log)
	ev := report.WithFallback(report.NewLLMEvaluator(provider), report.StaticEvaluator{}, log)

	log.Info("using llm content",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", provider.ModelID()),
		zap.Int("questions", srcCfg.Count),
	)
	return src, ev, nil
}
