// Package server exposes the catalog and generation pipeline over HTTP for
// editor plugins and automation.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/musekit/muse/internal/errors"
	"github.com/musekit/muse/internal/models"
	"github.com/musekit/muse/internal/service"
)

// Server provides the HTTP API.
type Server struct {
	service *service.Service
	port    int
	timeout time.Duration
}

// NewServer creates a server on the given port.
func NewServer(svc *service.Service, port int) *Server {
	return &Server{
		service: svc,
		port:    port,
		timeout: 120 * time.Second, // generation calls can be slow
	}
}

// SetTimeout overrides the per-request generation timeout.
func (s *Server) SetTimeout(d time.Duration) {
	s.timeout = d
}

// Start begins serving HTTP requests and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("server starting on http://localhost%s", addr)
	log.Printf("API endpoints available:")
	log.Printf("  http://localhost%s/categories - list categories", addr)
	log.Printf("  http://localhost%s/templates - list/search templates", addr)
	log.Printf("  http://localhost%s/templates/{id} - get one template", addr)
	log.Printf("  http://localhost%s/render - POST, render a prompt without generating", addr)
	log.Printf("  http://localhost%s/generate - POST, run the full generation pipeline", addr)
	log.Printf("  http://localhost%s/docs - interactive API documentation", addr)
	log.Printf("  http://localhost%s/help - API documentation", addr)

	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the routing handler, exported for tests.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.route)
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	// Enable CORS for cross-origin requests
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/")
	parts := strings.Split(path, "/")

	switch parts[0] {
	case "health":
		s.handleHealth(w, r)
	case "help", "api", "":
		s.handleHelp(w, r)
	case "categories":
		s.handleCategories(w, r)
	case "templates":
		s.handleTemplates(w, r, parts[1:])
	case "render":
		s.handleRender(w, r)
	case "generate":
		s.handleGenerate(w, r)
	case "docs":
		s.handleDocs(w, r)
	case "openapi.json":
		s.handleOpenAPISpec(w, r)
	default:
		s.writeError(w, fmt.Sprintf("Unknown operation: %s", parts[0]), http.StatusNotFound)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "muse-server",
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		s.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"categories": s.service.Categories(),
	})
}

// handleTemplates serves both the collection and single-template paths.
// The collection accepts ?category= and ?q= filters.
func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request, parts []string) {
	if r.Method != "GET" {
		s.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if len(parts) > 0 && parts[0] != "" {
		tmpl, err := s.service.GetTemplate(parts[0])
		if err != nil {
			apperrors.WriteHTTP(w, err)
			return
		}
		s.writeJSON(w, tmpl)
		return
	}

	var templates []*models.Template
	switch {
	case r.URL.Query().Get("q") != "":
		templates = s.service.SearchTemplates(r.URL.Query().Get("q"))
	case r.URL.Query().Get("category") != "":
		templates = s.service.ListTemplates(models.Category(r.URL.Query().Get("category")))
	default:
		for _, cat := range s.service.Categories() {
			templates = append(templates, s.service.ListTemplates(cat)...)
		}
	}

	s.writeJSON(w, map[string]interface{}{
		"count":     len(templates),
		"templates": templates,
	})
}

// generateRequest is the body for /render and /generate. Params are raw
// strings; the service parses numbers per the template's parameter kinds.
type generateRequest struct {
	Template string            `json:"template"`
	Params   map[string]string `json:"params"`
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*models.Template, models.Values, bool) {
	if r.Method != "POST" {
		s.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, nil, false
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "Invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	if req.Template == "" {
		s.writeError(w, "Missing required field: template", http.StatusBadRequest)
		return nil, nil, false
	}

	tmpl, err := s.service.GetTemplate(req.Template)
	if err != nil {
		apperrors.WriteHTTP(w, err)
		return nil, nil, false
	}

	values, err := s.service.ParseValues(tmpl, req.Params)
	if err != nil {
		apperrors.WriteHTTP(w, err)
		return nil, nil, false
	}

	return tmpl, values, true
}

// writeFieldErrors reports validation failures as a 400 with the per-field
// messages, mirroring what the form UI shows.
func (s *Server) writeFieldErrors(w http.ResponseWriter, errs models.FieldErrors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":        "Please fill in all required fields correctly.",
		"field_errors": errs,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	tmpl, values, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	built, fieldErrs, err := s.service.RenderPrompt(tmpl, values)
	if err != nil {
		apperrors.WriteHTTP(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		s.writeFieldErrors(w, fieldErrs)
		return
	}

	s.writeJSON(w, built)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	tmpl, values, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, fieldErrs, err := s.service.Generate(ctx, tmpl, values)
	if err != nil {
		apperrors.WriteHTTP(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		s.writeFieldErrors(w, fieldErrs)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"template": tmpl.ID,
		"text":     result.Text,
		"sources":  result.Sources,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	help := map[string]interface{}{
		"service": "muse-server",
		"endpoints": map[string]string{
			"GET /health":                  "health check",
			"GET /categories":              "list template categories",
			"GET /templates":               "list all templates",
			"GET /templates?category=Poem": "list templates in one category",
			"GET /templates?q=haiku":       "fuzzy-search templates",
			"GET /templates/{id}":          "get one template with its parameter specs",
			"POST /render":                 `render the prompt without generating: {"template": "haiku-poem", "params": {"topic": "autumn"}}`,
			"POST /generate":               `run the full generation pipeline (requires GEMINI_API_KEY)`,
			"GET /docs":                    "interactive API documentation",
			"GET /openapi.json":            "machine-readable API specification",
		},
	}
	s.writeJSON(w, help)
}
