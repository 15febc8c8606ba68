package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/leadrank/internal/enrich"
	"github.com/sells-group/leadrank/internal/ingest"
	"github.com/sells-group/leadrank/internal/pipeline"
	"github.com/sells-group/leadrank/internal/scorer"
)

var (
	scoreInput          string
	scoreOutput         string
	scoreFormat         string
	scoreMinScore       int
	scoreEmailOnly      bool
	scoreHighIntent     bool
	scoreEnrich         bool
	scoreOffline        bool
	scoreAdvanced       bool
	scoreReport         string
	scoreExplainWeights bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score, deduplicate and rank leads from a CSV, JSON or XLSX file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if scoreExplainWeights {
			out, err := yaml.Marshal(scorer.Explain())
			if err != nil {
				return eris.Wrap(err, "marshal weights")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		if scoreInput == "" {
			return eris.New("--input is required")
		}

		ctx := cmd.Context()
		now := time.Now()

		format, err := resolveFormat(scoreFormat, scoreOutput, cfg.Export.Format)
		if err != nil {
			return err
		}

		engine, err := newEngine(cfg.Dedup)
		if err != nil {
			return err
		}

		leads, err := ingest.ReadFile(ctx, scoreInput)
		if err != nil {
			return eris.Wrap(err, "read leads")
		}

		if scoreEnrich {
			leads = enrich.NewEnricherFromConfig(cfg.Enrich, scoreOffline).EnrichContacts(ctx, leads)
		}

		ranked := engine.Run(leads)
		if scoreAdvanced {
			ranked = enrich.AdvancedBatch(ranked, now)
		}

		filtered := pipeline.Apply(ranked, pipeline.Filter{
			MinScore:       scoreMinScore,
			EmailOnly:      scoreEmailOnly,
			HighIntentOnly: scoreHighIntent,
		})

		path, err := writeLeads(scoreOutput, format, filtered, now)
		if err != nil {
			return err
		}

		if scoreReport != "" {
			if err := writeReport(scoreReport, filtered, now); err != nil {
				return err
			}
		}

		zap.L().Info("scoring complete",
			zap.Int("input", len(leads)),
			zap.Int("ranked", len(ranked)),
			zap.Int("exported", len(filtered)),
			zap.String("output", path),
			zap.String("format", format),
		)
		return nil
	},
}

func init() {
	f := scoreCmd.Flags()
	f.StringVarP(&scoreInput, "input", "i", "", "lead file (.csv, .json or .xlsx)")
	f.StringVarP(&scoreOutput, "output", "o", "", `output file, "-" for stdout (default prioritized_leads_<date>.<format>)`)
	f.StringVar(&scoreFormat, "format", "", "output format: csv, json or xlsx (default from file extension or config)")
	f.IntVar(&scoreMinScore, "min-score", 0, "drop leads scoring below this")
	f.BoolVar(&scoreEmailOnly, "email-only", false, "keep only leads with an email")
	f.BoolVar(&scoreHighIntent, "high-intent", false, "keep only leads with a hiring score of at least 60")
	f.BoolVar(&scoreEnrich, "enrich", false, "look up missing emails and LinkedIn URLs before scoring")
	f.BoolVar(&scoreOffline, "offline", false, "guess contacts locally instead of calling the contact API")
	f.BoolVar(&scoreAdvanced, "advanced", false, "add freshness, growth, tech stack and validation signals")
	f.StringVar(&scoreReport, "report", "", "also write an insights report (.md or .html)")
	f.BoolVar(&scoreExplainWeights, "explain-weights", false, "print scoring weights and thresholds as YAML and exit")
	rootCmd.AddCommand(scoreCmd)
}
