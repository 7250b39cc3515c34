package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"fsops/internal/config"
	"fsops/internal/domain"
)

// resultView is the printable form of a domain.Result.
type resultView struct {
	Op           string `yaml:"op"`
	Path         string `yaml:"path"`
	Target       string `yaml:"target,omitempty"`
	OK           bool   `yaml:"ok"`
	Kind         string `yaml:"kind,omitempty"`
	Error        string `yaml:"error,omitempty"`
	CleanupError string `yaml:"cleanup_error,omitempty"`
}

func newResultView(res domain.Result) resultView {
	view := resultView{
		Op:     res.Op,
		Path:   res.Path,
		Target: res.Target,
		OK:     res.OK(),
	}
	if !res.OK() {
		view.Kind = res.Kind().String()
		view.Error = res.Err.Error()
	}
	if res.CleanupErr != nil {
		view.CleanupError = res.CleanupErr.Error()
	}
	return view
}

// printer writes results in the configured format.
type printer struct {
	out     io.Writer
	format  string
	success *color.Color
	failure *color.Color
	warning *color.Color
}

func newPrinter(out io.Writer, format string) *printer {
	p := &printer{
		out:     out,
		format:  format,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow),
	}
	if !isTerminal(out) {
		p.success.DisableColor()
		p.failure.DisableColor()
		p.warning.DisableColor()
	}
	return p
}

func outputFormat() string {
	if s := GetSettings(); s != nil {
		return s.Output
	}
	return config.OutputText
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) Results(results ...domain.Result) error {
	if p.format == config.OutputYAML {
		views := make([]resultView, 0, len(results))
		for _, res := range results {
			views = append(views, newResultView(res))
		}
		return p.yaml(views)
	}

	for _, res := range results {
		p.text(res)
	}
	return nil
}

func (p *printer) text(res domain.Result) {
	subject := res.Path
	if res.Target != "" {
		subject = fmt.Sprintf("%s -> %s", res.Path, res.Target)
	}

	if res.OK() {
		p.success.Fprint(p.out, "ok")
		fmt.Fprintf(p.out, "     %s %s\n", res.Op, subject)
	} else {
		p.failure.Fprint(p.out, "failed")
		fmt.Fprintf(p.out, " %s %s: %v\n", res.Op, subject, res.Err)
	}

	if res.CleanupErr != nil {
		p.warning.Fprintf(p.out, "  warning: source not removed: %v\n", res.CleanupErr)
	}
}

func (p *printer) yaml(v any) error {
	encoder := yaml.NewEncoder(p.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return encoder.Close()
}
