// Package chi exposes the catalog over HTTP. Handlers decode and encode
// only; every query decision lives in the usecase layer.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/reeldex/reeldex/internal/db"
	"github.com/reeldex/reeldex/internal/domain"
	logpkg "github.com/reeldex/reeldex/internal/logger"
	"github.com/reeldex/reeldex/internal/version"
)

// CatalogService is the movie query surface consumed by the handlers.
type CatalogService interface {
	FetchMovies(ctx context.Context, f domain.Filter, page, perPage int) (domain.MoviePage, error)
	FacetedSearch(ctx context.Context, cast []string, page, perPage int) (domain.FacetResult, error)
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
	MoviesByCountry(ctx context.Context, countries []string) ([]domain.MovieSummary, error)
	AllGenres(ctx context.Context) ([]string, error)
}

// CommentsService is the comment surface consumed by the handlers.
type CommentsService interface {
	TopCommenters(ctx context.Context) ([]domain.CommenterRank, error)
	AddComment(ctx context.Context, movieID, name, email, text string, date time.Time) (*domain.Comment, error)
	UpdateComment(ctx context.Context, id, email, text string, date time.Time) error
	DeleteComment(ctx context.Context, id, email string) error
}

// StatusReporter reports the store's effective client configuration.
type StatusReporter interface {
	Status() db.Status
}

// Server holds the HTTP handlers.
type Server struct {
	catalog  CatalogService
	comments CommentsService
	status   StatusReporter
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(catalog CatalogService, comments CommentsService, status StatusReporter, logger *zap.Logger) *Server {
	return &Server{catalog: catalog, comments: comments, status: status, logger: logger}
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/movies", s.handleListMovies)
		r.Get("/movies/faceted", s.handleFacetedSearch)
		r.Get("/movies/by-country", s.handleMoviesByCountry)
		r.Get("/movies/{id}", s.handleGetMovie)
		r.Get("/genres", s.handleAllGenres)
		r.Get("/comments/top", s.handleTopCommenters)
		r.Post("/comments", s.handleAddComment)
		r.Put("/comments/{id}", s.handleUpdateComment)
		r.Delete("/comments/{id}", s.handleDeleteComment)
	})
	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Handle("/metrics", promhttp.Handler())
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.FilterFromValues(q.Get("text"), csv(q.Get("cast")), csv(q.Get("genres")))

	page, err := s.catalog.FetchMovies(r.Context(), f, intParam(q.Get("page"), 0), intParam(q.Get("limit"), 0))
	if err != nil {
		s.respondDomainError(r.Context(), w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, page)
}

func (s *Server) handleFacetedSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cast := csv(q.Get("cast"))
	if len(cast) == 0 {
		s.respondError(w, http.StatusBadRequest, "cast filter is required for faceted search")
		return
	}

	result, err := s.catalog.FacetedSearch(r.Context(), cast, intParam(q.Get("page"), 0), intParam(q.Get("limit"), 0))
	if err != nil {
		s.respondDomainError(r.Context(), w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	movie, err := s.catalog.GetMovie(r.Context(), id)
	if err != nil {
		s.respondDomainError(r.Context(), w, err)
		return
	}
	if movie == nil {
		s.respondError(w, http.StatusNotFound, "movie not found")
		return
	}
	s.respondJSON(w, http.StatusOK, movie)
}

func (s *Server) handleMoviesByCountry(w http.ResponseWriter, r *http.Request) {
	countries := csv(r.URL.Query().Get("countries"))
	if len(countries) == 0 {
		s.respondError(w, http.StatusBadRequest, "countries parameter is required")
		return
	}

	summaries, err := s.catalog.MoviesByCountry(r.Context(), countries)
	if err != nil {
		s.respondDomainError(r.Context(), w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"movies": summaries})
}

func (s *Server) handleAllGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.catalog.AllGenres(r.Context())
	if err != nil {
		s.respondDomainError(r.Context(), w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"genres": genres})
}

func (s *Server) handleTopCommenters(w http.ResponseWriter, r *http.Request) {
	ranks, err := s.comments.TopCommenters(r.Context())
	if err != nil {
		s.respondDomainError(r.Context(), w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"commenters": ranks})
}

type commentRequest struct {
	MovieID string `json:"movie_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Text    string `json:"text"`
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "email and text are required")
		return
	}

	c, err := s.comments.AddComment(r.Context(), req.MovieID, req.Name, req.Email, req.Text, time.Now().UTC())
	if err != nil {
		s.respondDomainError(r.Context(), w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "email and text are required")
		return
	}

	if err := s.comments.UpdateComment(r.Context(), id, req.Email, req.Text, time.Now().UTC()); err != nil {
		s.respondDomainError(r.Context(), w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	email := r.URL.Query().Get("email")
	if email == "" {
		s.respondError(w, http.StatusBadRequest, "email parameter is required")
		return
	}

	if err := s.comments.DeleteComment(r.Context(), id, email); err != nil {
		s.respondDomainError(r.Context(), w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, s.status.Status())
}

// respondDomainError maps domain sentinels onto HTTP statuses. Internal
// failures log through the request-scoped logger so the entry carries the
// request id.
func (s *Server) respondDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrFilterTooBroad):
		s.respondError(w, http.StatusBadRequest, domain.ErrFilterTooBroad.Error())
	default:
		logpkg.FromContext(ctx).Error("request failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

// csv splits a comma-separated query value, dropping empty entries.
func csv(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// intParam parses a non-negative integer query value with a fallback.
func intParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
