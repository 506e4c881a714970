package cli

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"StockTracker/internal/model"
	"StockTracker/internal/tracker"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// chartPalette cycles when a comparison has more series than colors.
var chartPalette = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

func title(s string) string { return titleStyle.Render(s) }

func warn(s string) string { return warnStyle.Render("! " + s) }

// formatINR renders a price in rupees with grouping, e.g. ₹1,234.50.
func formatINR(v float64) string {
	return money.NewFromFloat(v, money.INR).Display()
}

func formatPrice(f model.Field) string {
	if !f.Known {
		return "unknown"
	}
	return formatINR(f.Value)
}

func formatMarketCap(f model.Field) string {
	if !f.Known {
		return "unknown"
	}
	return "₹" + humanize.CommafWithDigits(f.Value, 0)
}

func formatRatio(f model.Field) string {
	if !f.Known {
		return "unknown"
	}
	return fmt.Sprintf("%.2f", f.Value)
}

// formatYield renders the provider's fractional dividend yield as a
// percentage.
func formatYield(f model.Field) string {
	if !f.Known {
		return "unknown"
	}
	return fmt.Sprintf("%.2f%%", f.Value*100)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderListings(listings []model.Listing) string {
	t := newTable("COMPANY", "SYMBOL")
	for _, l := range listings {
		t.Row(l.Company, l.Symbol)
	}
	return t.String()
}

func renderDescriptor(d model.Descriptor) string {
	t := newTable("FIELD", "VALUE")
	t.Row("Current price", formatPrice(d.CurrentPrice))
	t.Row("52-week high", formatPrice(d.High52w))
	t.Row("52-week low", formatPrice(d.Low52w))
	t.Row("Market cap", formatMarketCap(d.MarketCap))
	t.Row("P/E ratio", formatRatio(d.PERatio))
	t.Row("Dividend yield", formatYield(d.DividendYield))
	t.Row("Previous close", formatPrice(d.PreviousClose))
	return t.String()
}

// renderComparison plots one close series per symbol on a shared chart.
func renderComparison(entries []tracker.CompareEntry, height int) string {
	data := make([][]float64, len(entries))
	legends := make([]string, len(entries))
	colors := make([]asciigraph.AnsiColor, len(entries))
	for i, e := range entries {
		data[i] = e.Series.Closes()
		legends[i] = e.Symbol
		colors[i] = chartPalette[i%len(chartPalette)]
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Caption("daily close"),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

// renderTrend plots the close column with its short and long rolling
// means. The NaN prefix of each mean renders as a gap until the window
// fills, which is the intended "insufficient window" presentation.
func renderTrend(trend tracker.Trend, shortMA, longMA, height int) string {
	data := [][]float64{trend.Series.Closes(), trend.Short, trend.Long}
	legends := []string{
		trend.Series.Symbol,
		fmt.Sprintf("%dd mean", shortMA),
		fmt.Sprintf("%dd mean", longMA),
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Caption("daily close with rolling means"),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Red),
		asciigraph.SeriesLegends(legends...),
	)
}
