package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/enrich"
	"github.com/sells-group/leadrank/internal/ingest"
)

var (
	enrichInput   string
	enrichOutput  string
	enrichFormat  string
	enrichOffline bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fill missing emails and LinkedIn URLs without scoring",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		format, err := resolveFormat(enrichFormat, enrichOutput, cfg.Export.Format)
		if err != nil {
			return err
		}

		leads, err := ingest.ReadFile(ctx, enrichInput)
		if err != nil {
			return eris.Wrap(err, "read leads")
		}

		enriched := enrich.NewEnricherFromConfig(cfg.Enrich, enrichOffline).EnrichContacts(ctx, leads)

		path, err := writeLeads(enrichOutput, format, enriched, time.Now())
		if err != nil {
			return err
		}

		zap.L().Info("enrichment complete",
			zap.Int("leads", len(enriched)),
			zap.String("output", path),
		)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVarP(&enrichInput, "input", "i", "", "lead file (.csv, .json or .xlsx) (required)")
	enrichCmd.Flags().StringVarP(&enrichOutput, "output", "o", "", `output file, "-" for stdout`)
	enrichCmd.Flags().StringVar(&enrichFormat, "format", "", "output format: csv, json or xlsx")
	enrichCmd.Flags().BoolVar(&enrichOffline, "offline", false, "guess contacts locally instead of calling the contact API")
	_ = enrichCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(enrichCmd)
}
