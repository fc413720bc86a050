package render

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog"
)

const (
	tokenProjectName = "${projectName}"
	tokenPackageName = "${packageName}"
	tokenPackageDir  = "__packageDir__"
)

var (
	spanPattern       = regexp.MustCompile(`\{\{(.*?)\}\}`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
)

// Warning records a recoverable rendering miss: a malformed expression
// span or a reference to a field the context does not carry. The span is
// left verbatim in the output and generation continues.
type Warning struct {
	Span   string
	Reason string
}

// emptyFS backs the template set's mandatory loader while exposing no
// files, keeping include/extend unavailable as documented on NewEngine.
type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Option configures an Engine before construction.
type Option func(*Engine)

// WithLogger attaches a logger used to surface rendering warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine rewrites a single string given a Context. It is deterministic
// and side-effect free; the three placeholder passes run in a fixed
// order so later passes can safely consume the output of earlier ones.
type Engine struct {
	set    *pongo2.TemplateSet
	logger zerolog.Logger
}

// NewEngine constructs an Engine backed by an isolated pongo2 template
// set. Expression spans only see the context's fields and vars; there is
// no loader, so templates cannot include or extend files.
func NewEngine(options ...Option) *Engine {
	e := &Engine{
		set:    pongo2.NewSet("scaffold", pongo2.NewFSLoader(emptyFS{})),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// RenderPath rewrites a relative template path. Only expression spans
// restricted to bare field lookups and the __packageDir__ token apply;
// paths never go through general expression evaluation.
func (e *Engine) RenderPath(path string, rctx Context) (string, []Warning) {
	out, warnings := e.expandSpans(path, rctx, true)
	out = expandPackageDir(out, rctx)
	for _, w := range warnings {
		e.logger.Warn().Str("span", w.Span).Str("path", path).Msg(w.Reason)
	}
	return out, warnings
}

// RenderContent rewrites file content, applying all three placeholder
// forms: expression spans (full pongo2 evaluation against the context),
// the literal ${projectName}/${packageName} tokens, and __packageDir__.
func (e *Engine) RenderContent(content string, rctx Context) (string, []Warning) {
	out, warnings := e.expandSpans(content, rctx, false)
	out = expandLiteralTokens(out, rctx)
	out = expandPackageDir(out, rctx)
	for _, w := range warnings {
		e.logger.Warn().Str("span", w.Span).Msg(w.Reason)
	}
	return out, warnings
}

// expandSpans replaces each {{ ... }} span individually. A span whose
// root identifier is unknown, or that fails to parse or evaluate, stays
// verbatim and yields a Warning instead of failing the run. In path mode
// the span must be a bare identifier.
func (e *Engine) expandSpans(input string, rctx Context, pathMode bool) (string, []Warning) {
	matches := spanPattern.FindAllStringIndex(input, -1)
	if len(matches) == 0 {
		return input, nil
	}

	fields := rctx.fields()

	var (
		out      strings.Builder
		warnings []Warning
		last     int
	)
	for _, match := range matches {
		out.WriteString(input[last:match[0]])
		span := input[match[0]:match[1]]
		expr := strings.TrimSpace(span[2 : len(span)-2])

		replacement, warning := e.evalSpan(span, expr, fields, pathMode)
		if warning != nil {
			warnings = append(warnings, *warning)
			out.WriteString(span)
		} else {
			out.WriteString(replacement)
		}
		last = match[1]
	}
	out.WriteString(input[last:])
	return out.String(), warnings
}

func (e *Engine) evalSpan(span, expr string, fields map[string]any, pathMode bool) (string, *Warning) {
	if expr == "" {
		return "", &Warning{Span: span, Reason: "empty expression span"}
	}

	root := identifierPattern.FindString(expr)
	if root == "" {
		return "", &Warning{Span: span, Reason: "expression does not start with a field name"}
	}
	value, known := fields[root]
	if !known {
		return "", &Warning{Span: span, Reason: fmt.Sprintf("unknown field %q", root)}
	}

	if pathMode {
		if root != expr {
			return "", &Warning{Span: span, Reason: "path spans are limited to bare field lookups"}
		}
		return fmt.Sprint(value), nil
	}

	tmpl, err := e.set.FromString(span)
	if err != nil {
		return "", &Warning{Span: span, Reason: fmt.Sprintf("malformed expression: %v", err)}
	}
	rendered, err := tmpl.Execute(pongo2.Context(fields))
	if err != nil {
		return "", &Warning{Span: span, Reason: fmt.Sprintf("evaluate expression: %v", err)}
	}
	return rendered, nil
}

func expandLiteralTokens(input string, rctx Context) string {
	if rctx.Name != "" {
		input = strings.ReplaceAll(input, tokenProjectName, rctx.Name)
	}
	if rctx.PackageName != "" {
		input = strings.ReplaceAll(input, tokenPackageName, rctx.PackageName)
	}
	return input
}

func expandPackageDir(input string, rctx Context) string {
	if rctx.PackageName == "" {
		return input
	}
	return strings.ReplaceAll(input, tokenPackageDir, rctx.PackageDir())
}
