// Package report renders stored football data as console tables.
package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/valyala/bytebufferpool"
)

var (
	accent  = lipgloss.Color("#bd93f9")
	muted   = lipgloss.Color("#6272a4")
	success = lipgloss.Color("#50fa7b")
	warning = lipgloss.Color("#ffb86c")
)

// Printer writes tables and notices to one writer. Styling degrades to
// plain text when the writer is not a terminal.
type Printer struct {
	w        io.Writer
	title    lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	number   lipgloss.Style
	border   lipgloss.Style
	notice   lipgloss.Style
	warning  lipgloss.Style
	emphasis lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:        w,
		title:    r.NewStyle().Foreground(accent).Bold(true),
		header:   r.NewStyle().Bold(true).Padding(0, 1),
		cell:     r.NewStyle().Padding(0, 1),
		number:   r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		border:   r.NewStyle().Foreground(muted),
		notice:   r.NewStyle().Foreground(success),
		warning:  r.NewStyle().Foreground(warning).Bold(true),
		emphasis: r.NewStyle().Bold(true),
	}
}

// Notice prints a one-line status message.
func (p *Printer) Notice(msg string) error {
	return p.write(p.notice.Render(msg))
}

// Warning prints a highlighted message, followed by an optional detail line.
func (p *Printer) Warning(msg, detail string) error {
	lines := []string{p.warning.Render(msg)}
	if detail = strings.TrimSpace(detail); detail != "" {
		lines = append(lines, detail)
	}
	return p.write(lines...)
}

// renderTable lays rows out under headers. numeric marks columns that are
// right-aligned.
func (p *Printer) renderTable(headers []string, rows [][]string, numeric ...int) string {
	rightAligned := make(map[int]struct{}, len(numeric))
	for _, col := range numeric {
		rightAligned[col] = struct{}{}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			if _, ok := rightAligned[col]; ok {
				return p.number
			}
			return p.cell
		})
	return t.String()
}

func (p *Printer) write(lines ...string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, line := range lines {
		_, _ = buf.WriteString(line)
		_ = buf.WriteByte('\n')
	}
	_, err := p.w.Write(buf.B)
	return err
}
