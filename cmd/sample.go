package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/model"
)

var (
	sampleCount  int
	sampleOutput string
	sampleSeed   int64
)

// sampleColumns is the header ingest expects.
var sampleColumns = []string{
	"company_name", "domain", "employees", "revenue_est",
	"email", "linkedin", "jobs_30d", "recent_funding",
}

var fundingRounds = []string{"Seed", "Series A", "Series B", "Series C", "No", ""}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a synthetic lead CSV for trying out the scorer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		leads := generateSamples(gofakeit.New(sampleSeed), sampleCount)

		f, err := os.Create(sampleOutput)
		if err != nil {
			return eris.Wrapf(err, "create %s", sampleOutput)
		}
		defer f.Close() //nolint:errcheck

		if err := writeSampleCSV(f, leads); err != nil {
			return err
		}

		zap.L().Info("sample written",
			zap.Int("leads", len(leads)),
			zap.String("output", sampleOutput),
		)
		return nil
	},
}

func init() {
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 25, "number of leads")
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "sample_leads.csv", "output CSV file")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "random seed (0 picks one)")
	rootCmd.AddCommand(sampleCmd)
}

// generateSamples builds n leads with a realistic mix of missing fields.
// Roughly one in ten repeats an earlier company in upper case so the
// deduplicator has something to do.
func generateSamples(f *gofakeit.Faker, n int) []model.Lead {
	leads := make([]model.Lead, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 && f.Number(1, 10) == 1 {
			dup := leads[f.Number(0, len(leads)-1)]
			dup.ID = "lead-" + strconv.Itoa(i)
			dup.CompanyName = strings.ToUpper(dup.CompanyName)
			leads = append(leads, dup)
			continue
		}

		domain := f.DomainName()
		l := model.Lead{
			ID:            "lead-" + strconv.Itoa(i),
			CompanyName:   f.Company(),
			Domain:        domain,
			Employees:     model.NumberValue(float64(f.Number(2, 5000))),
			RevenueEst:    model.TextValue("$" + strconv.Itoa(f.Number(50, 90_000)*1000)),
			Jobs30d:       model.NumberValue(float64(f.Number(0, 20))),
			RecentFunding: f.RandomString(fundingRounds),
		}
		if f.Bool() {
			l.Email = f.Username() + "@" + domain
		}
		if f.Bool() {
			l.LinkedIn = "https://www.linkedin.com/company/" + f.Username()
		}
		if f.Number(1, 5) == 1 {
			l.RevenueEst = model.Numeric{}
		}
		leads = append(leads, l)
	}
	return leads
}

func writeSampleCSV(w io.Writer, leads []model.Lead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sampleColumns); err != nil {
		return eris.Wrap(err, "write sample header")
	}
	for _, l := range leads {
		row := []string{
			l.CompanyName, l.Domain, l.Employees.Raw(), l.RevenueEst.Raw(),
			l.Email, l.LinkedIn, l.Jobs30d.Raw(), l.RecentFunding,
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "write sample row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "flush sample csv")
	}
	return nil
}
