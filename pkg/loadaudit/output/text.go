package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

// TextOptions configures terminal rendering.
type TextOptions struct {
	// Width is the card width in cells. Zero means 64.
	Width int
	// Courses includes the per-course table in each card.
	Courses bool
	// Categories includes the category list in each card.
	Categories bool
}

// DefaultTextOptions returns options showing every section.
func DefaultTextOptions() TextOptions {
	return TextOptions{Width: 64, Courses: true, Categories: true}
}

type textStyles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	ok      lipgloss.Style
	bad     lipgloss.Style
	card    lipgloss.Style
	warning lipgloss.Style
}

func newTextStyles(r *lipgloss.Renderer, width int) textStyles {
	return textStyles{
		title:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#64748b")),
		ok:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#16a34a")),
		bad:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#d97706")),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#cbd5e1")).
			Padding(0, 1).
			Width(width),
	}
}

// WriteText renders report as a KPI header followed by one card per record.
func WriteText(w io.Writer, report *models.Report, opts TextOptions) error {
	if opts.Width <= 0 {
		opts.Width = 64
	}
	st := newTextStyles(lipgloss.NewRenderer(w), opts.Width)

	var b strings.Builder
	b.WriteString(st.title.Render("Active file: "+report.Source) + st.muted.Render(" ("+report.Sheet+")") + "\n")
	fmt.Fprintf(&b, "Instructors: %d   With overage: %s\n",
		report.Summary.Total,
		st.bad.Render(fmt.Sprintf("%d", report.Summary.Overage)))
	for _, line := range WarningLines(report.Warnings) {
		b.WriteString(st.warning.Render("warning: "+line) + "\n")
	}
	b.WriteString("\n")

	for _, r := range report.Records {
		b.WriteString(renderCard(st, r, opts) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderCard(st textStyles, r models.InstructorRecord, opts TextOptions) string {
	badge := st.ok.Render("OK")
	if r.Overage {
		badge = st.bad.Render("ERROR")
	}

	lines := []string{
		st.title.Render(r.Name) + "  " + badge,
		st.muted.Render("ID: " + r.ID),
	}

	if opts.Categories {
		lines = append(lines, "Categories:")
		if len(r.Categories) == 0 {
			lines = append(lines, st.muted.Render("  Not specified"))
		}
		for _, c := range r.Categories {
			lines = append(lines, "  - "+c)
		}
	}

	lines = append(lines,
		fmt.Sprintf("Payroll: %s hrs", FormatHours(r.PayrollHours)),
		ProgressBar(r.Ratio(), opts.Width-12)+" "+Percent(r.Ratio()),
	)
	if r.Overage {
		lines = append(lines, st.bad.Render(fmt.Sprintf("Assigned: %s hrs (exceeds by %s)",
			FormatHours(r.AssignedHours), FormatHours(r.Delta()))))
	} else {
		lines = append(lines, st.ok.Render(fmt.Sprintf("Assigned: %s hrs (available: %s)",
			FormatHours(r.AssignedHours), FormatHours(-r.Delta()))))
	}

	if opts.Courses && len(r.Courses) > 0 {
		lines = append(lines, "Courses:")
		for _, c := range r.Courses {
			lines = append(lines, fmt.Sprintf("  %-*s %6s", opts.Width-16, truncate(c.Title, opts.Width-16), FormatHours(c.Hours)))
		}
	}

	return st.card.Render(strings.Join(lines, "\n"))
}

// WarningLines describes recovered parse problems, one per line.
func WarningLines(w models.Warnings) []string {
	if !w.Any() {
		return nil
	}
	var lines []string
	if w.SheetFallback {
		lines = append(lines, "template sheet not found, first sheet used")
	}
	if w.CoercedCells > 0 {
		lines = append(lines, fmt.Sprintf("%d numeric cells could not be parsed and count as 0", w.CoercedCells))
	}
	if w.OrphanRows > 0 {
		lines = append(lines, fmt.Sprintf("%d rows before the first instructor were ignored", w.OrphanRows))
	}
	if len(w.MissingColumns) > 0 {
		lines = append(lines, "missing columns: "+strings.Join(w.MissingColumns, ", "))
	}
	if len(w.SplitBlocks) > 0 {
		lines = append(lines, "instructors with non-contiguous rows: "+strings.Join(w.SplitBlocks, ", "))
	}
	return lines
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
