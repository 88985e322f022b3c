// Package web serves the browser dashboard.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leighmacdonald/fpl-form/internal/fpl"
	"github.com/leighmacdonald/fpl-form/internal/session"
	"github.com/leighmacdonald/fpl-form/internal/tracker"
	"github.com/leighmacdonald/fpl-form/internal/web/templates"
)

// SessionCookie holds the id of the visitors open session.
const SessionCookie = "fplform_session"

// Server binds the filter controls of the dashboard to the visitors session.
type Server struct {
	registry *session.Registry
	router   chi.Router
}

func New(registry *session.Registry, requestTimeout time.Duration) *Server {
	server := &Server{registry: registry}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(requestTimeout))

	router.Get("/", server.dashboard)
	router.Get("/healthz", server.health)
	server.router = router

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
		slog.Error("Failed to write health response", slog.String("error", err.Error()))
	}
}

// currentSession returns the visitors session, starting a new one when the cookie is missing or expired.
func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, error) {
	if cookie, errCookie := r.Cookie(SessionCookie); errCookie == nil {
		if sess, found := s.registry.Get(cookie.Value); found {
			return sess, nil
		}
	}

	sess, errStart := s.registry.Start(r.Context())
	if errStart != nil {
		return nil, errStart
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sess, nil
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	sess, errSession := s.currentSession(w, r)
	if errSession != nil {
		slog.Error("Failed to load player data", slog.String("error", errSession.Error()))
		templ.Handler(templates.ErrorPage(fetchErrorMessage(errSession)), templ.WithStatus(http.StatusBadGateway)).ServeHTTP(w, r)

		return
	}

	clubs := sess.Clubs()
	filter := parseFilter(r.URL.Query())

	templ.Handler(templates.Dashboard(templates.DashboardData{
		Positions: append([]string{tracker.All}, tracker.Positions()...),
		Clubs:     append([]string{tracker.All}, clubs...),
		Filter:    filter,
		Rows:      sess.Select(filter),
		Players:   sess.Players(),
	})).ServeHTTP(w, r)
}

// fetchErrorMessage describes the failure without leaking upstream bodies.
func fetchErrorMessage(err error) string {
	switch {
	case errors.Is(err, fpl.ErrFetchStatus):
		return "The API returned an unexpected response status."
	case errors.Is(err, fpl.ErrFetchDecode):
		return "The API returned a malformed response."
	case errors.Is(err, fpl.ErrFetchMissingKey):
		return "The API response did not contain the player or club lists."
	case errors.Is(err, fpl.ErrFetchRequest):
		return "The API could not be reached."
	default:
		return "An unexpected error occurred."
	}
}

// parseFilter reads the control values. Missing or invalid values fall back to the control defaults.
func parseFilter(values url.Values) tracker.Filter {
	filter := tracker.DefaultFilter()

	if position := strings.TrimSpace(values.Get("position")); position != "" {
		filter.Position = position
	}

	if club := strings.TrimSpace(values.Get("club")); club != "" {
		filter.Club = club
	}

	if price, errPrice := tracker.ParsePrice(values.Get("max_price")); errPrice == nil {
		filter.MaxPrice = price
	}

	return filter
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(wrapped, r)
		slog.Debug("Handled request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", wrapped.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
