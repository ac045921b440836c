package experiments

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteDistributionChart renders a search distribution over board cells as a
// bar chart to distribution.html in dir.
func WriteDistributionChart(dir string, boardSize int, distribution []float64) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "visit distribution over actions",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var cells []string
	items := make([]opts.BarData, 0, len(distribution))
	for action, p := range distribution {
		cells = append(cells, fmt.Sprintf("%d,%d", action/boardSize, action%boardSize))
		items = append(items, opts.BarData{Value: p})
	}
	bar.SetXAxis(cells)
	bar.AddSeries("visit share", items)

	page := components.NewPage()
	page.AddCharts(bar)

	f, err := os.Create(filepath.Join(dir, "distribution.html"))
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
