package preprocessing

import (
	"io"

	"github.com/aouyang1/go-dstk/frame"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-gota/gota/dataframe"
)

// BarLevels generates an echart bar chart of the number of distinct non-missing levels
// of each feature. If no features are provided every categorical column is used.
func BarLevels(df dataframe.DataFrame, features []string) (*charts.Bar, error) {
	features = resolveFeatures(df, features)

	barData := make([]opts.BarData, 0, len(features))
	for _, name := range features {
		s, err := frame.Column(df, name)
		if err != nil {
			return nil, err
		}
		barData = append(barData, opts.BarData{Value: frame.NUnique(s)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Categorical Levels",
			},
		),
	)
	bar.SetXAxis(features).
		AddSeries("levels", barData)
	return bar, nil
}

// PlotLevels renders the level counts of each feature as an html page
func PlotLevels(w io.Writer, df dataframe.DataFrame, features []string) error {
	bar, err := BarLevels(df, features)
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(bar)
	return page.Render(io.MultiWriter(w))
}
