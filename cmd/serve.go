package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/enrich"
	"github.com/sells-group/leadrank/internal/ingest"
	"github.com/sells-group/leadrank/internal/insights"
	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/pipeline"
	"github.com/sells-group/leadrank/pkg/contactapi"
)

const (
	maxBodyBytes    = 10 << 20
	shutdownTimeout = 10 * time.Second
	topInsights     = 10
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lead scoring HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine, err := newEngine(cfg.Dedup)
		if err != nil {
			return err
		}

		router := buildRouter(&api{
			engine: engine,
			finder: enrich.NewFinder(cfg.Enrich, false),
			now:    time.Now,
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// api holds the handler dependencies.
type api struct {
	engine *pipeline.Engine
	finder enrich.ContactFinder
	now    func() time.Time
}

// scoreResponse is the body of POST /v1/leads/score.
type scoreResponse struct {
	Leads  []model.Lead    `json:"leads"`
	Stats  insights.Stats  `json:"stats"`
	Filter pipeline.Filter `json:"filter"`
}

// insightsResponse is the body of POST /v1/leads/insights.
type insightsResponse struct {
	Stats           insights.Stats                `json:"stats"`
	Categories      []insights.CategoryAverage    `json:"categories"`
	Confidence      map[model.ConfidenceLevel]int `json:"confidence"`
	Signals         insights.KeyInsights          `json:"signals"`
	Quality         insights.QualityReport        `json:"quality"`
	Warnings        []string                      `json:"warnings"`
	Actions         []string                      `json:"actions"`
	Recommendations insights.Recommendations      `json:"recommendations"`
	Top             []model.Lead                  `json:"top"`
}

func buildRouter(a *api) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/leads/score", a.handleScore)
		r.Post("/leads/insights", a.handleInsights)
		r.Post("/enrich-contacts", a.handleEnrichContacts)
	})

	return r
}

func (a *api) handleScore(w http.ResponseWriter, r *http.Request) {
	f, advanced, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	leads, ok := a.decodeLeads(w, r)
	if !ok {
		return
	}

	ranked := a.engine.Run(leads)
	if advanced {
		ranked = enrich.AdvancedBatch(ranked, a.now())
	}
	out := pipeline.Apply(ranked, f)

	writeJSON(w, http.StatusOK, scoreResponse{
		Leads:  out,
		Stats:  insights.Summarize(out),
		Filter: f,
	})
}

func (a *api) handleInsights(w http.ResponseWriter, r *http.Request) {
	leads, ok := a.decodeLeads(w, r)
	if !ok {
		return
	}

	ranked := a.engine.Run(leads)
	q := insights.AssessQuality(ranked)
	warnings := q.Warnings()
	if warnings == nil {
		warnings = []string{}
	}
	actions := q.Actions()
	if actions == nil {
		actions = []string{}
	}

	writeJSON(w, http.StatusOK, insightsResponse{
		Stats:           insights.Summarize(ranked),
		Categories:      insights.CategoryAverages(ranked),
		Confidence:      insights.ConfidenceDistribution(ranked),
		Signals:         insights.Signals(ranked),
		Quality:         q,
		Warnings:        warnings,
		Actions:         actions,
		Recommendations: insights.Recommend(ranked),
		Top:             insights.Top(ranked, topInsights),
	})
}

// handleEnrichContacts serves the contact lookup contract of pkg/contactapi.
func (a *api) handleEnrichContacts(w http.ResponseWriter, r *http.Request) {
	var req contactapi.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, contactapi.Response{Error: "invalid request body"})
		return
	}
	if req.CompanyName == "" {
		writeJSON(w, http.StatusBadRequest, contactapi.Response{Error: "companyName is required"})
		return
	}

	res, err := a.finder.FindContacts(r.Context(), enrich.ContactRequest{
		CompanyName: req.CompanyName,
		Domain:      req.Domain,
	})
	if err != nil {
		zap.L().Warn("serve: contact lookup failed",
			zap.String("company", req.CompanyName),
			zap.Error(err),
		)
		writeJSON(w, http.StatusBadGateway, contactapi.Response{Error: "contact lookup failed"})
		return
	}

	data := &contactapi.Contacts{}
	if res != nil {
		data.Email = res.Email
		data.LinkedIn = res.LinkedIn
	}
	writeJSON(w, http.StatusOK, contactapi.Response{Success: true, Data: data})
}

func (a *api) decodeLeads(w http.ResponseWriter, r *http.Request) ([]model.Lead, bool) {
	leads, err := ingest.ParseJSON(r.Context(), http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return leads, true
}

// parseFilter reads min_score, email_only, high_intent and advanced from the
// query string.
func parseFilter(r *http.Request) (pipeline.Filter, bool, error) {
	var f pipeline.Filter
	q := r.URL.Query()

	if v := q.Get("min_score"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, false, eris.Errorf("invalid min_score %q", v)
		}
		f.MinScore = n
	}

	var advanced bool
	for name, dst := range map[string]*bool{
		"email_only":  &f.EmailOnly,
		"high_intent": &f.HighIntentOnly,
		"advanced":    &advanced,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, false, eris.Errorf("invalid %s %q", name, v)
		}
		*dst = b
	}

	return f, advanced, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("serve: write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
