// Package service provides the business logic shared by the TUI, CLI, and
// HTTP server: catalog queries, value parsing, validation, prompt rendering,
// and the full generate pipeline.
package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/musekit/muse/internal/catalog"
	apperrors "github.com/musekit/muse/internal/errors"
	"github.com/musekit/muse/internal/models"
	"github.com/musekit/muse/internal/renderer"
	"github.com/musekit/muse/internal/validation"
)

// Generator is the generation backend. Satisfied by *gemini.Client.
type Generator interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (*models.GenerationResult, error)
}

// Service wires the catalog to the generation backend.
type Service struct {
	catalog *catalog.Catalog
	gen     Generator
}

// NewService creates a service over the built-in catalog.
func NewService(gen Generator) *Service {
	return &Service{
		catalog: catalog.New(),
		gen:     gen,
	}
}

// Catalog exposes the underlying template catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Categories returns the catalog categories in display order.
func (s *Service) Categories() []models.Category {
	return s.catalog.Categories()
}

// ListTemplates returns the templates of one category in declaration order.
func (s *Service) ListTemplates(cat models.Category) []*models.Template {
	return s.catalog.ListByCategory(cat)
}

// SearchTemplates fuzzy-matches templates across all categories.
func (s *Service) SearchTemplates(query string) []*models.Template {
	return s.catalog.Search(query)
}

// GetTemplate looks a template up by id.
func (s *Service) GetTemplate(id string) (*models.Template, error) {
	tmpl, ok := s.catalog.ByID(id)
	if !ok {
		return nil, apperrors.NotFoundError("template " + strconv.Quote(id))
	}
	return tmpl, nil
}

// ParseValues converts raw string inputs (CLI flags, JSON string fields)
// into typed values for the template: number parameters parse to float64
// when they can, everything else stays a string. Missing parameters fall
// back to their declared defaults. Unknown keys are rejected so typos in
// parameter names fail loudly instead of silently rendering fallbacks.
func (s *Service) ParseValues(tmpl *models.Template, raw map[string]string) (models.Values, error) {
	for key := range raw {
		if _, ok := tmpl.Param(key); !ok {
			return nil, apperrors.ValidationError(
				"unknown parameter " + strconv.Quote(key) + " for template " + strconv.Quote(tmpl.ID))
		}
	}

	values := make(models.Values, len(tmpl.Parameters))
	for _, p := range tmpl.Parameters {
		in, ok := raw[p.ID]
		if !ok {
			in = p.DefaultValue
		}
		if p.Kind == models.KindNumber && strings.TrimSpace(in) != "" {
			if n, err := strconv.ParseFloat(strings.TrimSpace(in), 64); err == nil {
				values[p.ID] = n
				continue
			}
		}
		values[p.ID] = in
	}
	return values, nil
}

// ValidateValues runs the template's rules and returns the per-field
// messages, empty when the values are clean.
func (s *Service) ValidateValues(tmpl *models.Template, values models.Values) models.FieldErrors {
	return validation.Validate(tmpl, values)
}

// RenderPrompt validates then renders, without calling the backend. This is
// the dry-run path used by `muse render` and the /render endpoint.
func (s *Service) RenderPrompt(tmpl *models.Template, values models.Values) (renderer.BuiltPrompt, models.FieldErrors, error) {
	if errs := validation.Validate(tmpl, values); len(errs) > 0 {
		return renderer.BuiltPrompt{}, errs, nil
	}
	built, err := renderer.Build(tmpl, values)
	if err != nil {
		return renderer.BuiltPrompt{}, nil, apperrors.Wrap(err, apperrors.ErrCodeInternalError, "Failed to render prompt")
	}
	return built, nil, nil
}

// Generate runs the full pipeline: validate, render, call the backend, and
// reject blank output. Validation failures come back as field errors, not
// as an error value.
func (s *Service) Generate(ctx context.Context, tmpl *models.Template, values models.Values) (*models.GenerationResult, models.FieldErrors, error) {
	built, fieldErrs, err := s.RenderPrompt(tmpl, values)
	if err != nil || len(fieldErrs) > 0 {
		return nil, fieldErrs, err
	}

	result, err := s.gen.Generate(ctx, built.Prompt, built.SystemInstruction)
	if err != nil {
		return nil, nil, err
	}
	if result.IsEmpty() {
		return nil, nil, apperrors.EmptyResultError()
	}
	return result, nil, nil
}
