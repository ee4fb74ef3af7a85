package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nippou/internal/model"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDate = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleDuration = lipgloss.NewStyle().
			Bold(true)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints a de-emphasized message.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// PrintReportRow prints one report as a single list row.
func (c *CLIFormatter) PrintReportRow(r *model.DailyReport) {
	date := r.Date
	duration := r.WorkHours.Total
	if c.IsColorEnabled() {
		date = styleDate.Render(date)
		duration = styleDuration.Render(duration)
	}
	c.Printf("%s  %s-%s (%s)  %s  %s\n",
		date, r.WorkHours.Start, r.WorkHours.End, duration, r.Location, r.TaskStatus)
}

// PrintReportList prints reports as rows with a count footer.
func (c *CLIFormatter) PrintReportList(reports []model.DailyReport) {
	for i := range reports {
		c.PrintReportRow(&reports[i])
	}
	c.Muted(fmt.Sprintf("%d report(s)", len(reports)))
}

// PrintTemplateRow prints one template as a single list row.
func (c *CLIFormatter) PrintTemplateRow(t *model.Template) {
	marker := " "
	if t.IsDefault {
		marker = "*"
	}
	name := t.Name
	if c.IsColorEnabled() {
		name = styleDate.Render(name)
	}
	typ := t.Type
	if typ == "" {
		typ = "-"
	}
	c.Printf("%s %s  %s  %s\n", marker, t.ID, name, typ)
}

// PrintDocument prints a generated document with a separator rule.
func (c *CLIFormatter) PrintDocument(text string) {
	rule := strings.Repeat("─", 40)
	c.Muted(rule)
	c.Print(text)
	if !strings.HasSuffix(text, "\n") {
		c.Println()
	}
	c.Muted(rule)
}
