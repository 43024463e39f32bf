// Package render formats parsed forms, diagnostics and journal runs for the
// terminal.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/sable/foundation/core/error"
	"github.com/msto63/sable/foundation/lang"
	"github.com/msto63/sable/foundation/lang/ast"
	"github.com/msto63/sable/internal/journal"
)

// Format selects how forms are written
type Format string

const (
	FormatSexpr Format = "sexpr"
	FormatTree  Format = "tree"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported output formats
var Formats = []Format{FormatSexpr, FormatTree, FormatJSON, FormatYAML}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", mdwerror.Newf("unknown output format %q", name).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("render.ParseFormat")
}

// Renderer writes forms and diagnostics
type Renderer struct {
	format Format
	styles Styles
}

// New creates a renderer. Color only affects diagnostics and summaries;
// machine-readable formats are never styled.
func New(format Format, color bool) *Renderer {
	styles := PlainStyles()
	if color {
		styles = ColorStyles()
	}
	return &Renderer{format: format, styles: styles}
}

// Format returns the configured output format
func (r *Renderer) Format() Format {
	return r.format
}

// Forms writes the forms in the configured format
func (r *Renderer) Forms(w io.Writer, source string, forms []ast.Expr) error {
	switch r.format {
	case FormatTree:
		tp := ast.NewTreePrinter()
		for _, f := range forms {
			tp.Print(f)
		}
		_, err := io.WriteString(w, tp.String())
		return err

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document(source, forms))

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document(source, forms)); err != nil {
			return err
		}
		return enc.Close()

	default:
		_, err := io.WriteString(w, Sexpr(forms))
		return err
	}
}

// Sexpr renders each form on its own line
func Sexpr(forms []ast.Expr) string {
	var b strings.Builder
	for _, f := range forms {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func document(source string, forms []ast.Expr) map[string]interface{} {
	doc := map[string]interface{}{
		"forms": ast.EncodeAll(forms),
	}
	if source != "" {
		doc["source"] = source
	}
	return doc
}

// Diagnostic formats err for a terminal. Parse errors keep the
// "<line>:<col> | <message>" shape, prefixed with the source when known.
func (r *Renderer) Diagnostic(source string, err error) string {
	prefix := ""
	if source != "" {
		prefix = r.styles.Source.Render(source) + ":"
	}

	if pe, ok := lang.AsDiagnostic(err); ok {
		pos := r.styles.Position.Render(fmt.Sprintf("%d:%d", pe.Line, pe.Col))
		return prefix + pos + " | " + r.styles.Message.Render(pe.Message)
	}

	msg := err.Error()
	var me *mdwerror.Error
	if errors.As(err, &me) {
		msg = fmt.Sprintf("%s [%s]", me.Error(), me.Code())
	}
	if prefix != "" {
		prefix += " "
	}
	return prefix + r.styles.Message.Render(msg)
}

// Summary describes a successful parse
func (r *Renderer) Summary(result *lang.Result) string {
	stats := ast.Collect(result.Forms)
	return fmt.Sprintf("%s %s %s",
		r.styles.OK.Render("ok"),
		r.styles.Source.Render(result.Source),
		r.styles.Muted.Render(fmt.Sprintf("(%d tokens, %s, %s)", result.Tokens, stats, result.Duration.Round(time.Microsecond))),
	)
}

// Runs writes journal entries as a table, newest first
func (r *Renderer) Runs(w io.Writer, runs []*journal.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, r.styles.Muted.Render("no runs recorded"))
		return err
	}

	if r.format == FormatJSON || r.format == FormatYAML {
		if r.format == FormatJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(runs); err != nil {
			return err
		}
		return enc.Close()
	}

	header := fmt.Sprintf("%-36s  %-19s  %-6s  %6s  %5s  %s", "ID", "CREATED", "STATUS", "TOKENS", "FORMS", "SOURCE")
	if _, err := fmt.Fprintln(w, r.styles.Header.Render(header)); err != nil {
		return err
	}

	for _, run := range runs {
		status := r.styles.OK.Render(fmt.Sprintf("%-6s", run.Status))
		if run.Status == journal.StatusError {
			status = r.styles.Failed.Render(fmt.Sprintf("%-6s", run.Status))
		}
		line := fmt.Sprintf("%-36s  %-19s  %s  %6d  %5d  %s",
			run.ID, run.CreatedAt.Local().Format("2006-01-02 15:04:05"), status, run.Tokens, run.Forms, run.Source)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if run.Diagnostic != "" {
			if _, err := fmt.Fprintln(w, "  "+r.styles.Muted.Render(run.Diagnostic)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats writes the journal summary line
func (r *Renderer) Stats(w io.Writer, stats *journal.Stats) error {
	_, err := fmt.Fprintf(w, "%d runs, %s ok, %s failed, avg %.1fms\n",
		stats.Total,
		r.styles.OK.Render(fmt.Sprint(stats.OK)),
		r.styles.Failed.Render(fmt.Sprint(stats.Failed)),
		stats.AvgDurationMs,
	)
	return err
}
