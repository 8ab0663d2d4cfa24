package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-equity/equity"
	"github.com/lox/holdem-equity/poker"
)

// Options controls what Render prints.
type Options struct {
	// Categories adds the per-player best-hand category breakdown.
	Categories bool
	// NoColor renders plain text regardless of the terminal.
	NoColor bool
}

type styles struct {
	header   lipgloss.Style
	hand     lipgloss.Style
	win      lipgloss.Style
	tie      lipgloss.Style
	category lipgloss.Style
	percent  lipgloss.Style
	footer   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		win:      r.NewStyle().Foreground(lipgloss.Color("10")),
		tie:      r.NewStyle().Foreground(lipgloss.Color("11")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		percent:  r.NewStyle().Foreground(lipgloss.Color("9")),
		footer:   r.NewStyle().Faint(true),
	}
}

const (
	handWidth     = 8
	rateWidth     = 8
	categoryWidth = 17
)

// Render writes a simulation result as a small table.
func Render(w io.Writer, result *equity.Result, opts Options) error {
	renderer := lipgloss.NewRenderer(w)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	st := newStyles(renderer)

	var b strings.Builder
	rates := result.Rates()

	fmt.Fprintf(&b, "%s%s%s%s\n",
		st.header.Render(pad("hand", handWidth)),
		st.header.Render(pad("win", rateWidth)),
		st.header.Render(pad("tie", rateWidth)),
		st.header.Render("preflop"))

	rows := []struct {
		hole [2]poker.Card
		win  string
	}{
		{result.Player1, rates.Player1Win},
		{result.Player2, rates.Player2Win},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%s%s%s%s\n",
			st.hand.Render(pad(poker.FormatCards(row.hole[:]), handWidth)),
			st.win.Render(pad(row.win+"%", rateWidth)),
			st.tie.Render(pad(rates.Tie+"%", rateWidth)),
			st.category.Render(string(poker.CategorizeHoleCards(row.hole[0], row.hole[1]))))
	}

	lower, upper := result.ConfidenceInterval()
	fmt.Fprintf(&b, "\n%s %.1f%% (95%% CI %.1f%% to %.1f%%)\n",
		st.header.Render(poker.FormatCards(result.Player1[:])+" equity"),
		result.Player1Equity()*100, lower*100, upper*100)

	if opts.Categories {
		b.WriteString("\n")
		renderCategories(&b, result, st)
	}

	fmt.Fprintf(&b, "\n%s\n", st.footer.Render(fmt.Sprintf("%d trials in %v (%d workers, seed %d)",
		result.Trials, result.Elapsed.Truncate(time.Millisecond), result.Workers, result.Seed)))

	_, err := io.WriteString(w, b.String())
	return err
}

func renderCategories(b *strings.Builder, result *equity.Result, st styles) {
	fmt.Fprintf(b, "%s%s%s\n",
		st.category.Render(pad("hand", categoryWidth)),
		st.hand.Render(pad(poker.FormatCards(result.Player1[:]), handWidth)),
		st.hand.Render(poker.FormatCards(result.Player2[:])))

	for _, category := range poker.Categories {
		c1 := result.Categories[0][category]
		c2 := result.Categories[1][category]
		if c1 == 0 && c2 == 0 {
			continue
		}
		fmt.Fprintf(b, "%s%s%s\n",
			st.category.Render(pad(category.String(), categoryWidth)),
			st.percent.Render(pad(share(c1, result.Trials), handWidth)),
			st.percent.Render(share(c2, result.Trials)))
	}
}

func share(count, total int) string {
	if count == 0 || total == 0 {
		return "."
	}
	return fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
