package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/musekit/muse/internal/models"
	"github.com/musekit/muse/internal/service"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt, systemInstruction string) (*models.GenerationResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.GenerationResult{Text: f.text}, nil
}

func newTestServer(gen *fakeGenerator) *httptest.Server {
	svc := service.NewService(gen)
	return httptest.NewServer(NewServer(svc, 0).Handler())
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, out interface{}) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&fakeGenerator{})
	defer srv.Close()

	var body map[string]string
	if status := getJSON(t, srv.URL+"/health", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestListTemplates(t *testing.T) {
	srv := newTestServer(&fakeGenerator{})
	defer srv.Close()

	var body struct {
		Count     int                `json:"count"`
		Templates []*models.Template `json:"templates"`
	}
	if status := getJSON(t, srv.URL+"/templates", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body.Count != 12 || len(body.Templates) != 12 {
		t.Errorf("count = %d, templates = %d, want 12", body.Count, len(body.Templates))
	}
}

func TestListTemplatesByCategory(t *testing.T) {
	srv := newTestServer(&fakeGenerator{})
	defer srv.Close()

	var body struct {
		Templates []*models.Template `json:"templates"`
	}
	getJSON(t, srv.URL+"/templates?category=Poem", &body)
	if len(body.Templates) == 0 {
		t.Fatal("no poem templates")
	}
	for _, tmpl := range body.Templates {
		if tmpl.Category != models.CategoryPoem {
			t.Errorf("template %q has category %q", tmpl.ID, tmpl.Category)
		}
	}
}

func TestGetTemplate(t *testing.T) {
	srv := newTestServer(&fakeGenerator{})
	defer srv.Close()

	var tmpl models.Template
	if status := getJSON(t, srv.URL+"/templates/haiku-poem", &tmpl); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if tmpl.ID != "haiku-poem" {
		t.Errorf("id = %q", tmpl.ID)
	}

	if status := getJSON(t, srv.URL+"/templates/unknown", nil); status != http.StatusNotFound {
		t.Errorf("unknown template status = %d, want 404", status)
	}
}

func TestRender(t *testing.T) {
	srv := newTestServer(&fakeGenerator{})
	defer srv.Close()

	var body struct {
		Prompt            string `json:"prompt"`
		SystemInstruction string `json:"systemInstruction"`
	}
	status := postJSON(t, srv.URL+"/render",
		`{"template": "haiku-poem", "params": {"topic": "autumn"}}`, &body)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body.Prompt, "autumn") {
		t.Errorf("prompt = %q", body.Prompt)
	}
	if body.SystemInstruction == "" {
		t.Error("system instruction missing")
	}
}

func TestRenderValidationFailure(t *testing.T) {
	srv := newTestServer(&fakeGenerator{})
	defer srv.Close()

	var body struct {
		Error       string            `json:"error"`
		FieldErrors map[string]string `json:"field_errors"`
	}
	status := postJSON(t, srv.URL+"/render", `{"template": "haiku-poem", "params": {}}`, &body)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body.FieldErrors["topic"] != "Topic is required." {
		t.Errorf("field errors = %v", body.FieldErrors)
	}
}

func TestGenerate(t *testing.T) {
	srv := newTestServer(&fakeGenerator{text: "a poem"})
	defer srv.Close()

	var body struct {
		Template string `json:"template"`
		Text     string `json:"text"`
	}
	status := postJSON(t, srv.URL+"/generate",
		`{"template": "haiku-poem", "params": {"topic": "rivers"}}`, &body)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body.Text != "a poem" {
		t.Errorf("text = %q", body.Text)
	}
}

func TestGenerateBackendFailure(t *testing.T) {
	srv := newTestServer(&fakeGenerator{err: errors.New("boom")})
	defer srv.Close()

	status := postJSON(t, srv.URL+"/generate",
		`{"template": "haiku-poem", "params": {"topic": "rivers"}}`, nil)
	if status < 500 {
		t.Errorf("status = %d, want 5xx", status)
	}
}

// slowGenerator never answers; it only returns once the context is
// cancelled.
type slowGenerator struct{}

func (slowGenerator) Generate(ctx context.Context, prompt, systemInstruction string) (*models.GenerationResult, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestGenerateTimeout(t *testing.T) {
	s := NewServer(service.NewService(slowGenerator{}), 0)
	s.SetTimeout(50 * time.Millisecond)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	status := postJSON(t, srv.URL+"/generate",
		`{"template": "haiku-poem", "params": {"topic": "rivers"}}`, nil)
	if status < 500 {
		t.Errorf("status = %d, want 5xx", status)
	}
}

func TestUnknownParamRejected(t *testing.T) {
	srv := newTestServer(&fakeGenerator{})
	defer srv.Close()

	status := postJSON(t, srv.URL+"/render",
		`{"template": "haiku-poem", "params": {"topci": "typo"}}`, nil)
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestUnknownOperation(t *testing.T) {
	srv := newTestServer(&fakeGenerator{})
	defer srv.Close()

	if status := getJSON(t, srv.URL+"/frobnicate", nil); status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(&fakeGenerator{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin header = %q", got)
	}
}
