package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/hyperifyio/scpinfo/internal/scp"
)

// scrapeEndpoint handles GET /api/scp?scp=<id>.
// Only input validation failures use a non-200 status; pipeline failures
// travel in the body.
type scrapeEndpoint struct {
	scraper Scraper
}

func (e *scrapeEndpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, err := scp.ParseID(r.URL.Query().Get("scp"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res := e.scraper.Scrape(r.Context(), n)
	if res.Failed() {
		hlog.FromRequest(r).Info().Str("error", res.Err).Msg("scrape reported error")
	}
	writeJSON(w, http.StatusOK, res)
}

// HealthResponse is the response for GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type healthEndpoint struct {
	version string
}

func (e *healthEndpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: e.version})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
