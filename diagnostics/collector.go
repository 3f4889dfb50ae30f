package diagnostics

import (
	"errors"
	"fmt"
	"os"

	gfn "github.com/panyam/goutils/fn"
	"golang.org/x/term"
)

var (
	PARSE_ERROR_FOUND = errors.New("parse error found")
)

// ColorEnabled reports whether diagnostics printed to stderr carry ANSI
// color. Honors NO_COLOR and requires stderr to be a terminal.
var ColorEnabled = os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stderr.Fd()))

type Collector struct {
	Diags []Diag

	// Silent saves diagnostics without printing them.
	Silent bool
}

func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

func NewSilent() *Collector {
	collector := New()
	collector.Silent = true
	return collector
}

func (collector *Collector) ReportAndSave(diag Diag) {
	if !collector.Silent {
		fmt.Fprintln(os.Stderr, diag.Render(ColorEnabled))
	}
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

func (collector *Collector) Messages() []string {
	return gfn.Map(collector.Diags, func(diag Diag) string { return diag.String() })
}
