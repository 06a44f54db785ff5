package api

import (
	"log/slog"
	"net/http"
	"time"

	"ua-analyzer/internal/core"
	"ua-analyzer/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type AnalyzerService struct {
	classifier core.Classifier
}

func NewAnalyzerService(classifier core.Classifier) *AnalyzerService {
	return &AnalyzerService{classifier: classifier}
}

func (s *AnalyzerService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Route("/analyze", func(r chi.Router) {
		r.Get("/", RestHandler(s.AnalyzeQuery))
		r.Post("/", RestHandler(s.Analyze))
	})
}

// AnalyzeQuery classifies the user_agent query param, or the caller's own
// User-Agent header when the param is absent.
func (s *AnalyzerService) AnalyzeQuery(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.AnalyzeParams](r)
	if err != nil {
		return nil, err
	}

	userAgent := params.UserAgent
	if !r.Form.Has("user_agent") {
		userAgent = r.UserAgent()
	}

	return s.analyze(r, userAgent)
}

func (s *AnalyzerService) Analyze(r *http.Request) (any, error) {
	req, err := ParseRequest[api.AnalyzeRequest](r)
	if err != nil {
		return nil, err
	}

	if req.UserAgent == nil {
		return nil, CodedErrorf(http.StatusBadRequest, "user_agent is required")
	}

	return s.analyze(r, *req.UserAgent)
}

func (s *AnalyzerService) analyze(r *http.Request, userAgent string) (any, error) {
	decision, err := s.classifier.Classify(r.Context(), userAgent)
	if err != nil {
		slog.Error("error classifying user agent", "request_id", middleware.GetReqID(r.Context()), "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "unable to classify user agent")
	}

	return api.AnalyzeResponse{UserAgent: userAgent, Decision: string(decision)}, nil
}

// NewRouter builds the HTTP gateway with the standard middleware stack.
func NewRouter(classifier core.Classifier) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	NewAnalyzerService(classifier).AddRoutes(r)

	return r
}
