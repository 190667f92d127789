// Package server exposes the scenario engine over a JSON HTTP API.
package server

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/leftover-labs/freedom-rate/internal/analytics"
	"github.com/leftover-labs/freedom-rate/internal/refdata"
	"github.com/leftover-labs/freedom-rate/internal/scenario"
	"github.com/leftover-labs/freedom-rate/pkg/constants"
	"github.com/leftover-labs/freedom-rate/pkg/costs"
	"github.com/leftover-labs/freedom-rate/pkg/tax"
)

type handler struct {
	logger      *zap.Logger
	engine      *scenario.Engine
	store       *analytics.Store
	forwarder   *analytics.Forwarder
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler serving the scenario API.
func NewHandler(logger *zap.Logger, engine *scenario.Engine, store *analytics.Store, forwarder *analytics.Forwarder, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = scenario.NewEngine(nil, logger)
	}
	if store == nil {
		store = analytics.NewStore()
	}
	if forwarder == nil {
		forwarder = analytics.NewForwarder("", 0, logger)
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		engine:      engine,
		store:       store,
		forwarder:   forwarder,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/scenario", h.handleScenario)
	mux.HandleFunc("/api/salary", h.handleSalary)
	mux.HandleFunc("/api/regions", h.handleRegions)
	mux.HandleFunc("/api/cities", h.handleCities)
	mux.HandleFunc("/api/targets", h.handleTargets)
	mux.HandleFunc("/api/percentiles", h.handlePercentiles)
	mux.HandleFunc("/api/snapshot", h.handleSnapshot)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

// scenarioRequest is the full comparison request: one input plus the
// optional relocation target and what-if deltas.
type scenarioRequest struct {
	SessionID        string      `json:"sessionId"`
	Profile          costs.Input `json:"profile"`
	RelocationTarget string      `json:"relocationTarget,omitempty"`
	WhatIf           struct {
		RemoteDays  float64 `json:"remoteDays"`
		RentDelta   float64 `json:"rentDelta"`
		IncomeDelta float64 `json:"incomeDelta"`
	} `json:"whatIf"`
}

type scenarioResponse struct {
	scenario.Comparison
	Duration string `json:"duration"`
}

func (h *handler) handleScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req scenarioRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	started := time.Now()
	comparison := h.engine.Compare(req.Profile, req.RelocationTarget, scenario.WhatIfDeltas{
		RemoteDays:  req.WhatIf.RemoteDays,
		RentDelta:   req.WhatIf.RentDelta,
		IncomeDelta: req.WhatIf.IncomeDelta,
	})

	if req.RelocationTarget != "" && comparison.Relocation == nil {
		h.logger.Warn("unknown relocation target",
			zap.String("op", "server.handleScenario"),
			zap.String("target", req.RelocationTarget),
		)
	}

	// Recording the snapshot must never block or fail the computation.
	if req.SessionID != "" {
		snapshot := analytics.Snapshot{
			SessionID: req.SessionID,
			Inputs:    req.Profile,
			Derived:   comparison.Current,
		}
		h.store.Upsert(snapshot)
		h.forwarder.Forward(snapshot)
	}

	h.writeJSON(w, http.StatusOK, scenarioResponse{
		Comparison: comparison,
		Duration:   time.Since(started).String(),
	})
}

type salaryRequest struct {
	Region      string  `json:"region"`
	GrossAnnual float64 `json:"grossAnnual"`
}

type salaryResponse struct {
	CurrencySymbol string  `json:"currencySymbol"`
	NetAnnual      float64 `json:"netAnnual"`
	NetMonthly     float64 `json:"netMonthly"`
}

func (h *handler) handleSalary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req salaryRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	region := h.engine.Catalog().LookupRegion(req.Region)
	h.writeJSON(w, http.StatusOK, salaryResponse{
		CurrencySymbol: region.CurrencySymbol,
		NetAnnual:      h.engine.EstimateAnnualNet(req.GrossAnnual),
		NetMonthly:     tax.EstimateAnnualNetMonthly(req.GrossAnnual),
	})
}

func (h *handler) handleRegions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, sortedValues(h.engine.Catalog().Regions()))
}

func (h *handler) handleCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, sortedValues(h.engine.Catalog().Cities()))
}

func (h *handler) handleTargets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, sortedValues(h.engine.Catalog().Targets()))
}

func (h *handler) handlePercentiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	region := r.URL.Query().Get("region")
	h.writeJSON(w, http.StatusOK, h.engine.Catalog().Percentiles(region))
}

func (h *handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var snapshot analytics.Snapshot
	if !h.decodeBody(w, r, &snapshot) {
		return
	}
	if snapshot.SessionID == "" {
		h.writeError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	h.store.Upsert(snapshot)
	h.forwarder.Forward(snapshot)
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	defer func() {
		_, _ = io.Copy(io.Discard, body)
		_ = body.Close()
	}()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]interface{}{
		"status":  status,
		"message": message,
	})
}

// sortedValues flattens an id-keyed table into a stable id-ordered slice.
func sortedValues[V refdata.RegionProfile | refdata.CityProfile | refdata.RelocationTarget](table map[string]V) []V {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]V, 0, len(ids))
	for _, id := range ids {
		out = append(out, table[id])
	}
	return out
}
