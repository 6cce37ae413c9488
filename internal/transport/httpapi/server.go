// Package httpapi exposes the ranking queries over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/studymate-labs/matchengine/internal/domain"
	"github.com/studymate-labs/matchengine/internal/logger"
	"github.com/studymate-labs/matchengine/internal/metrics"
	healthuc "github.com/studymate-labs/matchengine/internal/usecase/health"
	matchuc "github.com/studymate-labs/matchengine/internal/usecase/match"
	recommenduc "github.com/studymate-labs/matchengine/internal/usecase/recommend"
)

// ErrorResponse is the wire shape of all error replies.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned to clients.
const (
	CodeBadRequest  = "bad_request"
	CodeNotFound    = "not_found"
	CodeQueryFailed = "query_failed"
	CodeRateLimited = "rate_limited"
	CodeInternal    = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the query services and maps domain errors to HTTP replies.
// Request handling logs through the request-scoped logger installed in the
// context by the wide-event middleware.
type Server struct {
	recommend     *recommenduc.Service
	match         *matchuc.Service
	health        *healthuc.Service
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	recommend *recommenduc.Service,
	match *matchuc.Service,
	health *healthuc.Service,
) *Server {
	s := &Server{
		recommend: recommend,
		match:     match,
		health:    health,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidUserID, http.StatusBadRequest, CodeBadRequest),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, CodeBadRequest),
		sentinelHandler(domain.ErrUserNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrQueryFailed, http.StatusInternalServerError, CodeQueryFailed),
	}
	return s
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/recommend-posts", s.RecommendPosts)
	r.Get("/find-partner", s.FindPartner)
	r.Get("/healthz", s.Healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// recommendResponse is the reply of GET /recommend-posts.
type recommendResponse struct {
	Recommended []recommenduc.RankedPost `json:"recommended"`
}

// RecommendPosts handles GET /recommend-posts?user_id=.
func (s *Server) RecommendPosts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	posts, err := s.recommend.Recommend(r.Context(), userID)
	if err != nil {
		s.handleDomainError(r.Context(), w, err, "recommend_posts")
		return
	}

	writeJSON(w, http.StatusOK, recommendResponse{Recommended: posts})
}

// matchResponse is the reply of GET /find-partner.
type matchResponse struct {
	Matches []matchuc.Match `json:"matches"`
}

// FindPartner handles GET /find-partner?user_id=&domain=&study_time=&team_pref=.
// domain repeats; study_time and team_pref overrides must name a value from
// their enumerated sets.
func (s *Server) FindPartner(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("user_id")

	ov, err := overridesFromQuery(q.Get("study_time"), q.Get("team_pref"), q["domain"])
	if err != nil {
		s.handleDomainError(r.Context(), w, err, "find_partner")
		return
	}

	matches, err := s.match.FindPartners(r.Context(), userID, ov)
	if err != nil {
		s.handleDomainError(r.Context(), w, err, "find_partner")
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{Matches: matches})
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

func overridesFromQuery(studyTime, teamPref string, domains []string) (matchuc.Overrides, error) {
	ov := matchuc.Overrides{Domains: domains}

	if studyTime != "" {
		st := strings.ToLower(studyTime)
		if !domain.ValidStudyTime(st) {
			return matchuc.Overrides{}, fmt.Errorf("%w: study_time", domain.ErrInvalidQuery)
		}
		ov.StudyTime = st
	}
	if teamPref != "" {
		tp := strings.ToLower(teamPref)
		if !domain.ValidTeamPref(tp) {
			return matchuc.Overrides{}, fmt.Errorf("%w: team_pref", domain.ErrInvalidQuery)
		}
		ov.TeamPref = tp
	}
	return ov, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// safeDomainMessage maps an error to caller-visible text. Only sentinel
// messages leak out; everything else is replaced.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidUserID,
		domain.ErrInvalidQuery,
		domain.ErrUserNotFound,
		domain.ErrQueryFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, safeDomainMessage(err))
		return true
	}
}

// handleDomainError walks the handler chain; unmatched errors become a
// generic 500 with detail kept in the server log. The log lines carry the
// request id via the context logger.
func (s *Server) handleDomainError(ctx context.Context, w http.ResponseWriter, err error, query string) {
	log := logger.FromContext(ctx)
	log.Warn("domain error", zap.String("query", query), zap.Error(err))
	metrics.QueryErrorsTotal.WithLabelValues(query, errorClass(err)).Inc()

	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}

	log.Error("internal error", zap.String("query", query), zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternal, "internal error")
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidUserID), errors.Is(err, domain.ErrInvalidQuery):
		return "bad_request"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
