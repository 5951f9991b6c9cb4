package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/processing"
	"blinkdeploys/tokenscope/pkg/processing/compress"
	"blinkdeploys/tokenscope/pkg/processing/costs"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is human-readable text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
	// FormatCSV is CSV output.
	FormatCSV OutputFormat = "csv"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", NewConfigError("format", fmt.Sprintf("unsupported output format %q (valid: text, json, csv)", s))
	}
}

// Table is data that can be written as rows.
type Table interface {
	Header() []string
	Rows() [][]string
}

// Formatter formats command output.
type Formatter interface {
	FormatTo(w io.Writer, data any) error
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatCSV:
		return &CSVFormatter{}
	default:
		return &TextFormatter{}
	}
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// CSVFormatter writes Table data as CSV with a header row.
type CSVFormatter struct{}

// FormatTo writes data to writer in CSV format. data must implement Table.
func (f *CSVFormatter) FormatTo(w io.Writer, data any) error {
	t, ok := asTable(data)
	if !ok {
		return fmt.Errorf("csv output is not supported for %T", data)
	}

	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(t.Header()); err != nil {
		return err
	}
	if err := csvWriter.WriteAll(t.Rows()); err != nil {
		return err
	}
	return csvWriter.Error()
}

// TextFormatter renders reports, compression results and the catalog as
// styled text. Other values print with %v.
type TextFormatter struct{}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// FormatTo writes data to writer in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data any) error {
	var out string
	switch v := data.(type) {
	case *processing.Report:
		out = renderReport(v)
	case *compress.Result:
		out = renderCompression(v)
	case *catalog.Catalog:
		out = renderCatalog(v)
	case ModelView:
		out = renderModelView(v)
	default:
		out = fmt.Sprintf("%v", data)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// ModelView is one model's projection from a report, selected with
// --model.
type ModelView struct {
	ReportID string             `json:"id"`
	Tokens   int                `json:"original_tokens"`
	Analysis costs.CostAnalysis `json:"cost_analysis"`
}

// Header implements Table.
func (v ModelView) Header() []string { return costHeader }

// Rows implements Table.
func (v ModelView) Rows() [][]string { return [][]string{costRow(v.Analysis)} }

// ParseModelRef splits a --model value into provider and model. A bare
// model name yields an empty provider.
func ParseModelRef(ref string) (provider, model string) {
	provider, model, qualified := strings.Cut(strings.TrimSpace(ref), "/")
	if !qualified {
		return "", provider
	}
	return provider, model
}

// NewModelView pairs one model's projection with the report it was priced
// for.
func NewModelView(r *processing.Report, a costs.CostAnalysis) ModelView {
	return ModelView{ReportID: r.ID, Tokens: r.TextStats.OriginalTokens, Analysis: a}
}

func renderReport(r *processing.Report) string {
	var sb strings.Builder

	sb.WriteString(headingStyle.Render("Text statistics") + "\n")
	writeField(&sb, "Characters", strconv.Itoa(r.TextStats.Characters))
	writeField(&sb, "Words", strconv.Itoa(r.TextStats.Words))
	writeField(&sb, "Lines", strconv.Itoa(r.TextStats.Lines))
	writeField(&sb, "Tokens", strconv.Itoa(r.TextStats.OriginalTokens))
	writeField(&sb, "Reading time", fmt.Sprintf("%.1f min", r.TextStats.ReadingTimeMinutes))
	sb.WriteString("\n")

	if r.Compression != nil {
		sb.WriteString(renderCompressionStats(r.Compression))
		sb.WriteString("\n")
	}

	sb.WriteString(headingStyle.Render("Cost projection") + "\n")
	sb.WriteString(costTable(r.CostAnalysis) + "\n\n")

	writeField(&sb, "Cheapest", goodStyle.Render(summaryLine(r.CheapestModel)))
	writeField(&sb, "Most expensive", badStyle.Render(summaryLine(r.MostExpensiveModel)))

	return strings.TrimRight(sb.String(), "\n")
}

func renderCompression(res *compress.Result) string {
	return strings.TrimRight(renderCompressionStats(res), "\n")
}

func renderCompressionStats(res *compress.Result) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Compression") + "\n")
	writeField(&sb, "Tokens", fmt.Sprintf("%d -> %d", res.OriginalTokens, res.CompressedTokens))
	writeField(&sb, "Reduction", fmt.Sprintf("%.2f%%", res.ReductionPercentage))
	writeField(&sb, "Techniques", strings.Join(res.TechniquesApplied, ", "))
	return sb.String()
}

func renderCatalog(c *catalog.Catalog) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render(fmt.Sprintf("Pricing catalog (as of %s)", c.AsOf().Format("2006-01-02"))) + "\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(catalogHeader...).
		Rows(catalogRows(c)...)
	sb.WriteString(t.Render())
	return sb.String()
}

func renderModelView(v ModelView) string {
	a := v.Analysis
	var sb strings.Builder
	sb.WriteString(headingStyle.Render(a.Provider+"/"+a.Model) + "\n")
	writeField(&sb, "Tokens", strconv.Itoa(v.Tokens))
	writeField(&sb, "Input cost", "$"+a.InputCost.StringFixed(6))
	writeField(&sb, "Total (1K out)", "$"+a.TotalCost1KOutput.StringFixed(6))
	writeField(&sb, "Total (5K out)", "$"+a.TotalCost5KOutput.StringFixed(6))
	fits := goodStyle.Render("yes")
	if !a.FitsInContext {
		fits = badStyle.Render("no")
	}
	writeField(&sb, "Fits context", fmt.Sprintf("%s (%d tokens)", fits, a.ContextWindow))
	return strings.TrimRight(sb.String(), "\n")
}

func writeField(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-15s", label+":")), value)
}

func summaryLine(m processing.ModelSummary) string {
	return fmt.Sprintf("%s/%s $%s (1K out)", m.Provider, m.Model, m.TotalCost1KOutput.StringFixed(6))
}

func costTable(analyses []costs.CostAnalysis) string {
	rows := make([][]string, 0, len(analyses))
	for _, a := range analyses {
		rows = append(rows, costRow(a))
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(costHeader...).
		Rows(rows...).
		Render()
}

var costHeader = []string{
	"provider", "model", "input_cost", "output_cost_1k", "output_cost_5k",
	"total_cost_1k_output", "total_cost_5k_output", "context_window", "fits_in_context",
}

func costRow(a costs.CostAnalysis) []string {
	return []string{
		a.Provider,
		a.Model,
		a.InputCost.String(),
		a.OutputCost1K.String(),
		a.OutputCost5K.String(),
		a.TotalCost1KOutput.String(),
		a.TotalCost5KOutput.String(),
		strconv.Itoa(a.ContextWindow),
		strconv.FormatBool(a.FitsInContext),
	}
}

var catalogHeader = []string{"provider", "model", "input_per_million", "output_per_million", "context_window"}

func catalogRows(c *catalog.Catalog) [][]string {
	entries := c.Entries()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Provider,
			e.Model,
			e.InputPerMillion.String(),
			e.OutputPerMillion.String(),
			strconv.Itoa(e.ContextWindow),
		})
	}
	return rows
}

// ReportTable returns the cost analysis of r as a Table, one row per
// projected model.
func ReportTable(r *processing.Report) Table { return reportTable{r} }

type reportTable struct{ r *processing.Report }

func (t reportTable) Header() []string { return costHeader }

func (t reportTable) Rows() [][]string {
	rows := make([][]string, 0, len(t.r.CostAnalysis))
	for _, a := range t.r.CostAnalysis {
		rows = append(rows, costRow(a))
	}
	return rows
}

type catalogTable struct{ c *catalog.Catalog }

func (t catalogTable) Header() []string { return catalogHeader }

func (t catalogTable) Rows() [][]string { return catalogRows(t.c) }

type compressionTable struct{ res *compress.Result }

func (t compressionTable) Header() []string {
	return []string{"original_tokens", "compressed_tokens", "reduction_percentage", "techniques"}
}

func (t compressionTable) Rows() [][]string {
	return [][]string{{
		strconv.Itoa(t.res.OriginalTokens),
		strconv.Itoa(t.res.CompressedTokens),
		strconv.FormatFloat(t.res.ReductionPercentage, 'f', 2, 64),
		strings.Join(t.res.TechniquesApplied, ";"),
	}}
}

func asTable(data any) (Table, bool) {
	switch v := data.(type) {
	case Table:
		return v, true
	case *processing.Report:
		return reportTable{v}, true
	case *catalog.Catalog:
		return catalogTable{v}, true
	case *compress.Result:
		return compressionTable{v}, true
	default:
		return nil, false
	}
}
