// Package export writes generation results out of the app: a Markdown file
// with YAML front matter, or the system clipboard.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/musekit/muse/internal/clipboard"
	apperrors "github.com/musekit/muse/internal/errors"
	"github.com/musekit/muse/internal/models"
)

// frontMatter is the metadata block at the top of an exported file.
type frontMatter struct {
	Template    string            `yaml:"template"`
	Name        string            `yaml:"name"`
	Category    string            `yaml:"category"`
	Model       string            `yaml:"model,omitempty"`
	GeneratedAt time.Time         `yaml:"generated_at"`
	Parameters  map[string]string `yaml:"parameters,omitempty"`
	Sources     []models.Source   `yaml:"sources,omitempty"`
}

// Markdown renders the result as a Markdown document with YAML front
// matter, ready to drop into a notes vault.
func Markdown(tmpl *models.Template, values models.Values, result *models.GenerationResult, model string) (string, error) {
	params := make(map[string]string, len(tmpl.Parameters))
	for _, p := range tmpl.Parameters {
		if s := values.String(p.ID); s != "" {
			params[p.ID] = s
		}
	}

	fm := frontMatter{
		Template:    tmpl.ID,
		Name:        tmpl.Name,
		Category:    string(tmpl.Category),
		Model:       model,
		GeneratedAt: time.Now().UTC(),
		Parameters:  params,
		Sources:     result.Sources,
	}

	meta, err := yaml.Marshal(&fm)
	if err != nil {
		return "", apperrors.ExportError("encoding front matter", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimRight(result.Text, "\n"))
	b.WriteString("\n")

	if len(result.Sources) > 0 {
		b.WriteString("\n## Sources\n\n")
		for _, src := range result.Sources {
			title := src.Title
			if title == "" {
				title = src.URL
			}
			fmt.Fprintf(&b, "- [%s](%s)\n", title, src.URL)
		}
	}

	return b.String(), nil
}

// WriteFile exports the result to path, creating parent directories.
func WriteFile(path string, tmpl *models.Template, values models.Values, result *models.GenerationResult, model string) error {
	doc, err := Markdown(tmpl, values, result, model)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.ExportError("creating export directory", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return apperrors.ExportError("writing export file", err)
	}
	return nil
}

// DefaultFilename derives a timestamped filename for a template's export.
func DefaultFilename(tmpl *models.Template) string {
	return fmt.Sprintf("%s-%s.md", tmpl.ID, time.Now().Format("20060102-150405"))
}

// CopyResult places the generated text on the clipboard.
func CopyResult(result *models.GenerationResult) error {
	if err := clipboard.Copy(result.Text); err != nil {
		return apperrors.ExportError("copying to clipboard", err)
	}
	return nil
}
