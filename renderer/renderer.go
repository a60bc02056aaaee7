// Package renderer formats pnl reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/pnl"
)

//go:embed templates/*.md
var embedded embed.FS

var templates, _ = fs.Sub(embedded, "templates")

// RenderReport renders the per-symbol report to a markdown string.
func RenderReport(r *pnl.Report, currency string) string {
	partials := map[string]string{
		"report_title":   "report_title.md",
		"report_symbols": "report_symbols.md",
	}
	return renderTemplate("report", "report.md", partials, NewReport(r, currency))
}

// LotsMarkdown renders the open lots of an engine as a markdown table.
func LotsMarkdown(lots []pnl.OpenLot, method pnl.AccountingMethod) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Open Lots\n\n")
	fmt.Fprintf(&b, "Method: **%s**, lots are listed in closing order.\n\n", method)

	if len(lots) == 0 {
		fmt.Fprintln(&b, "No open lots.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Symbol | Side | Quantity | Price | Opened |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, l := range lots {
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %d |\n", l.Symbol, l.Side, l.Quantity, l.Price, l.Timestamp)
	}
	return b.String()
}

// ResultsMarkdown renders realized PnL results as a markdown table.
func ResultsMarkdown(results []pnl.PnLResult, places int32) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Realized PnL\n\n")
	if len(results) == 0 {
		fmt.Fprintln(&b, "No PnL realized.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Timestamp | Symbol | PnL |")
	fmt.Fprintln(&b, "|---:|:---|---:|")
	for _, r := range results {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", r.Timestamp, r.Symbol, r.PnL.StringFixed(places))
	}
	return b.String()
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
