// Package cli provides the headless command-line interface: list and
// inspect templates, render prompts, and run one-shot generations without
// the TUI.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "github.com/musekit/muse/internal/errors"
	"github.com/musekit/muse/internal/export"
	"github.com/musekit/muse/internal/models"
	"github.com/musekit/muse/internal/service"
)

// CLI executes headless commands against the service.
type CLI struct {
	service *service.Service
	model   string
}

// NewCLI creates a new CLI instance. The model name is only used to stamp
// exports.
func NewCLI(svc *service.Service, model string) *CLI {
	return &CLI{service: svc, model: model}
}

// ExecuteCommand dispatches one command invocation.
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "categories":
		return c.listCategories(commandArgs)
	case "list", "ls":
		return c.listTemplates(commandArgs)
	case "search":
		return c.searchTemplates(commandArgs)
	case "get", "show":
		return c.showTemplate(commandArgs)
	case "render":
		return c.renderPrompt(commandArgs)
	case "generate", "gen":
		return c.generate(commandArgs)
	case "help":
		return c.printUsage()
	default:
		return fmt.Errorf("unknown command: %s. Use 'help' for usage information", command)
	}
}

// listCategories prints the category names.
func (c *CLI) listCategories(args []string) error {
	format := parseFlag(args, "--format", "-f")
	cats := c.service.Categories()

	if format == "json" {
		return printJSON(cats)
	}
	for _, cat := range cats {
		fmt.Println(cat)
	}
	return nil
}

// listTemplates lists templates, optionally filtered by category.
func (c *CLI) listTemplates(args []string) error {
	format := parseFlag(args, "--format", "-f")
	category := parseFlag(args, "--category", "-c")

	var templates []*models.Template
	if category != "" {
		templates = c.service.ListTemplates(models.Category(category))
		if len(templates) == 0 {
			return fmt.Errorf("no templates in category %q (categories: %s)",
				category, joinCategories(c.service.Categories()))
		}
	} else {
		for _, cat := range c.service.Categories() {
			templates = append(templates, c.service.ListTemplates(cat)...)
		}
	}

	return c.formatTemplates(templates, format)
}

// searchTemplates fuzzy-matches templates by name and description.
func (c *CLI) searchTemplates(args []string) error {
	format := parseFlag(args, "--format", "-f")
	query := strings.Join(stripFlags(args), " ")
	if query == "" {
		return fmt.Errorf("search requires a query")
	}

	templates := c.service.SearchTemplates(query)
	if len(templates) == 0 {
		fmt.Printf("No templates matching %q\n", query)
		return nil
	}
	return c.formatTemplates(templates, format)
}

// showTemplate prints one template with its parameter specs.
func (c *CLI) showTemplate(args []string) error {
	positional := stripFlags(args)
	if len(positional) == 0 {
		return fmt.Errorf("show requires a template ID")
	}

	tmpl, err := c.service.GetTemplate(positional[0])
	if err != nil {
		return err
	}

	if parseFlag(args, "--format", "-f") == "json" {
		return printJSON(tmpl)
	}

	fmt.Printf("%s (%s)\n", tmpl.Name, tmpl.ID)
	fmt.Printf("Category: %s\n", tmpl.Category)
	fmt.Printf("%s\n\nParameters:\n", tmpl.Description)
	for _, p := range tmpl.Parameters {
		line := fmt.Sprintf("  %s (%s)", p.ID, p.Kind)
		rule := p.Rule()
		if rule.Required {
			line += " [required]"
		}
		if p.DefaultValue != "" {
			line += fmt.Sprintf(" default=%q", p.DefaultValue)
		}
		fmt.Println(line)
		fmt.Printf("      %s\n", p.Label)
	}
	return nil
}

// renderPrompt builds the prompt without calling the generation service.
func (c *CLI) renderPrompt(args []string) error {
	tmpl, values, err := c.resolveInputs(args)
	if err != nil {
		return err
	}

	built, fieldErrs, err := c.service.RenderPrompt(tmpl, values)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return fieldErrorsError(fieldErrs)
	}

	if parseFlag(args, "--format", "-f") == "json" {
		out, err := built.RenderJSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	if built.SystemInstruction != "" {
		fmt.Printf("# System\n%s\n\n# Prompt\n", built.SystemInstruction)
	}
	fmt.Println(built.Prompt)
	return nil
}

// generate runs the full pipeline and prints or exports the result.
func (c *CLI) generate(args []string) error {
	tmpl, values, err := c.resolveInputs(args)
	if err != nil {
		return err
	}

	result, fieldErrs, err := c.service.Generate(context.Background(), tmpl, values)
	if err != nil {
		return fmt.Errorf("%s", apperrors.FormatCLI(err))
	}
	if len(fieldErrs) > 0 {
		return fieldErrorsError(fieldErrs)
	}

	if out := parseFlag(args, "--output", "-o"); out != "" {
		if err := export.WriteFile(out, tmpl, values, result, c.model); err != nil {
			return err
		}
		fmt.Printf("Saved to %s\n", out)
		return nil
	}

	fmt.Println(result.Text)
	if len(result.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, src := range result.Sources {
			fmt.Printf("  %s (%s)\n", src.Title, src.URL)
		}
	}
	return nil
}

// resolveInputs looks up the template from the first positional arg and
// parses the repeated --param k=v flags into typed values.
func (c *CLI) resolveInputs(args []string) (*models.Template, models.Values, error) {
	positional := stripFlags(args)
	if len(positional) == 0 {
		return nil, nil, fmt.Errorf("a template ID is required")
	}

	tmpl, err := c.service.GetTemplate(positional[0])
	if err != nil {
		return nil, nil, err
	}

	raw := map[string]string{}
	for i := 0; i < len(args); i++ {
		if args[i] != "--param" && args[i] != "-p" {
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("--param requires a key=value argument")
		}
		key, value, found := strings.Cut(args[i+1], "=")
		if !found || key == "" {
			return nil, nil, fmt.Errorf("invalid --param %q, expected key=value", args[i+1])
		}
		raw[key] = value
		i++
	}

	values, err := c.service.ParseValues(tmpl, raw)
	if err != nil {
		return nil, nil, err
	}
	return tmpl, values, nil
}

func (c *CLI) formatTemplates(templates []*models.Template, format string) error {
	if format == "json" {
		return printJSON(templates)
	}
	for _, tmpl := range templates {
		fmt.Printf("%-26s %-14s %s\n", tmpl.ID, tmpl.Category, tmpl.Name)
	}
	return nil
}

func fieldErrorsError(errs models.FieldErrors) error {
	var b strings.Builder
	b.WriteString("Please fill in all required fields correctly.")
	for _, field := range errs.SortedFields() {
		fmt.Fprintf(&b, "\n  %s: %s", field, errs[field])
	}
	return fmt.Errorf("%s", b.String())
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseFlag returns the value following the given flag, or "".
func parseFlag(args []string, names ...string) string {
	for i, arg := range args {
		for _, name := range names {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
		}
	}
	return ""
}

// stripFlags returns the positional arguments, skipping flags and their
// values.
func stripFlags(args []string) []string {
	var positional []string
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			i++ // skip the flag's value too
			continue
		}
		positional = append(positional, args[i])
	}
	return positional
}

func joinCategories(cats []models.Category) string {
	names := make([]string, len(cats))
	for i, cat := range cats {
		names[i] = string(cat)
	}
	return strings.Join(names, ", ")
}

func (c *CLI) printUsage() error {
	fmt.Print(`muse - form-driven creative content generation

Usage:
  muse categories                      list template categories
  muse list [--category <name>]        list templates
  muse search <query>                  fuzzy-search templates
  muse show <template-id>              show a template and its parameters
  muse render <template-id> [--param k=v ...]
                                       build the prompt without generating
  muse generate <template-id> [--param k=v ...] [--output file.md]
                                       generate content (requires GEMINI_API_KEY)

Flags:
  --param, -p k=v     set a template parameter (repeatable)
  --format, -f json   machine-readable output
  --category, -c      filter list by category
  --output, -o        write the generation to a Markdown file

Run without arguments to start the interactive TUI.
`)
	return nil
}
