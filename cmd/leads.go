package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/config"
	"github.com/sells-group/leadrank/internal/dedup"
	"github.com/sells-group/leadrank/internal/export"
	"github.com/sells-group/leadrank/internal/insights"
	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/pipeline"
)

// stdoutPath selects standard output as the output destination.
const stdoutPath = "-"

// newEngine builds the scoring engine described by the dedup settings.
func newEngine(c config.DedupConfig) (*pipeline.Engine, error) {
	sim, err := dedup.StrategyByName(c.Strategy)
	if err != nil {
		return nil, err
	}
	d := dedup.New(dedup.WithSimilarity(sim), dedup.WithThreshold(c.Threshold))
	return pipeline.NewEngine(pipeline.WithDeduplicator(d)), nil
}

// resolveFormat picks the export format: the explicit flag, then the output
// file extension, then the configured default.
func resolveFormat(flag, output, fallback string) (string, error) {
	format := flag
	if format == "" && output != "" && output != stdoutPath {
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); export.ValidFormat(ext) {
			format = ext
		}
	}
	if format == "" {
		format = fallback
	}
	format = strings.ToLower(format)
	if !export.ValidFormat(format) {
		return "", eris.Errorf("unsupported output format %q", format)
	}
	return format, nil
}

// writeLeads exports leads to output, or to a dated file in the working
// directory when output is empty.
func writeLeads(output, format string, leads []model.Lead, now time.Time) (string, error) {
	if output == stdoutPath {
		return output, export.Write(os.Stdout, format, leads)
	}
	if output == "" {
		output = export.FileName(now, format)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, leads); err != nil {
		return "", err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return "", eris.Wrapf(err, "write %s", output)
	}
	return output, nil
}

// writeReport renders the insights report as markdown, or HTML when path ends
// in .html.
func writeReport(path string, leads []model.Lead, now time.Time) error {
	content := insights.RenderMarkdown(leads, now)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		html, err := insights.RenderHTML(content)
		if err != nil {
			return err
		}
		content = html
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return eris.Wrapf(err, "write report %s", path)
	}
	return nil
}
