package weathertrend

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/aouyang1/go-weathertrend/trend"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotTimeLayout formats the chart x axis labels
const PlotTimeLayout = "01-02 15:04"

var ErrNoReports = errors.New("no reports to plot")

// missing marks a gap in an echarts series
const missing = "-"

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. The input
// y is a slice of series that must have the same length as the input time slice. NaN values are
// left as gaps.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	xAxis := make([]string, 0, len(t))
	for _, ct := range t {
		xAxis = append(xAxis, ct.Format(PlotTimeLayout))
	}
	line = line.SetXAxis(xAxis)

	for i, name := range seriesName {
		if i >= len(y) {
			break
		}
		lineData := make([]opts.LineData, 0, len(y[i]))
		for _, v := range y[i] {
			if math.IsNaN(v) {
				lineData = append(lineData, opts.LineData{Value: missing})
				continue
			}
			lineData = append(lineData, opts.LineData{Value: v})
		}
		line = line.AddSeries(name, lineData)
	}

	return line
}

// LineReport charts the observed temperatures of a report along with the predicted extension
// starting from the last windowed observation. The feels like temperature is added when reported.
func LineReport(r *Report) *charts.Line {
	t := mergeTimes(r.Series.Times(), r.PredictionTimes)
	pos := make(map[int64]int, len(t))
	for i, ct := range t {
		pos[ct.UnixNano()] = i
	}

	observed := make([]float64, len(t))
	predicted := make([]float64, len(t))
	feelsLike := make([]float64, len(t))
	for i := range t {
		observed[i] = math.NaN()
		predicted[i] = math.NaN()
		feelsLike[i] = math.NaN()
	}
	for _, o := range r.Series {
		observed[pos[o.Timestamp.UnixNano()]] = o.Temperature
		if o.FeelsLike != nil {
			feelsLike[pos[o.Timestamp.UnixNano()]] = *o.FeelsLike
		}
	}

	if len(r.Prediction.Temperatures) > 0 && r.Window > 0 && r.Window <= len(r.Series) {
		anchor := r.Series[r.Window-1]
		predicted[pos[anchor.Timestamp.UnixNano()]] = anchor.Temperature
		for i, v := range r.Prediction.Temperatures {
			predicted[pos[r.PredictionTimes[i].UnixNano()]] = v
		}
	}

	title := fmt.Sprintf("%s Temperature (°C)", r.Location())
	if r.Prediction.OK() {
		title = fmt.Sprintf("%s Temperature (°C), prediction confidence %.1f%%", r.Location(), r.Prediction.Confidence*100)
	}
	names := []string{"Forecast", "Predicted"}
	y := [][]float64{observed, predicted}
	if r.Summary.FeelsLike != nil {
		names = append(names, "Feels Like")
		y = append(y, feelsLike)
	}
	return LineTSeries(title, names, t, y)
}

// LineWind charts the wind speed of each observation in a report
func LineWind(r *Report) *charts.Line {
	return LineTSeries(
		fmt.Sprintf("%s Wind Speed (m/s)", r.Location()),
		[]string{"Wind Speed"},
		r.Series.Times(),
		[][]float64{r.Series.WindSpeeds()},
	)
}

// mergeTimes returns the sorted union of the time slices
func mergeTimes(a, b []time.Time) []time.Time {
	seen := make(map[int64]struct{}, len(a)+len(b))
	merged := make([]time.Time, 0, len(a)+len(b))
	for _, ts := range [][]time.Time{a, b} {
		for _, ct := range ts {
			if _, exists := seen[ct.UnixNano()]; exists {
				continue
			}
			seen[ct.UnixNano()] = struct{}{}
			merged = append(merged, ct)
		}
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Before(merged[j])
	})
	return merged
}

// BarRainHumidity charts the precipitation probability of each observation in a report along with
// the relative humidity when reported
func BarRainHumidity(r *Report) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: fmt.Sprintf("%s Rain Probability and Humidity (%%)", r.Location()),
			},
		),
	)

	xAxis := make([]string, 0, len(r.Series))
	rain := make([]opts.BarData, 0, len(r.Series))
	humidity := make([]opts.BarData, 0, len(r.Series))
	for _, o := range r.Series {
		xAxis = append(xAxis, o.Timestamp.Format(PlotTimeLayout))
		rain = append(rain, opts.BarData{Value: o.PrecipitationProbability})
		humidity = append(humidity, optionalBarData(o.Humidity))
	}
	bar.SetXAxis(xAxis).AddSeries("Rain Probability", rain)
	if r.Summary.Humidity != nil {
		bar.AddSeries("Humidity", humidity)
	}
	return bar
}

func optionalBarData(v *float64) opts.BarData {
	if v == nil {
		return opts.BarData{Value: missing}
	}
	return opts.BarData{Value: *v}
}

func meanBarData(m *trend.Measurement) opts.BarData {
	if m == nil {
		return opts.BarData{Value: missing}
	}
	return opts.BarData{Value: m.Mean}
}

// BarComparison charts the summary temperatures, rain likelihood, humidity and wind of each report
// side by side
func BarComparison(c Comparison) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "City Comparison",
			},
		),
	)

	cities := make([]string, 0, len(c))
	mean := make([]opts.BarData, 0, len(c))
	low := make([]opts.BarData, 0, len(c))
	high := make([]opts.BarData, 0, len(c))
	rain := make([]opts.BarData, 0, len(c))
	feelsLike := make([]opts.BarData, 0, len(c))
	humidity := make([]opts.BarData, 0, len(c))
	wind := make([]opts.BarData, 0, len(c))
	for _, r := range c {
		cities = append(cities, r.Location())
		mean = append(mean, opts.BarData{Value: r.Summary.MeanTemperature})
		low = append(low, opts.BarData{Value: r.Summary.MinTemperature})
		high = append(high, opts.BarData{Value: r.Summary.MaxTemperature})
		rain = append(rain, opts.BarData{Value: r.Summary.MeanRainProbability})
		feelsLike = append(feelsLike, meanBarData(r.Summary.FeelsLike))
		humidity = append(humidity, meanBarData(r.Summary.Humidity))
		wind = append(wind, meanBarData(r.Summary.WindSpeed))
	}

	bar.SetXAxis(cities).
		AddSeries("Mean °C", mean).
		AddSeries("Min °C", low).
		AddSeries("Max °C", high).
		AddSeries("Feels Like °C", feelsLike).
		AddSeries("Rain %", rain).
		AddSeries("Humidity %", humidity).
		AddSeries("Wind m/s", wind)
	return bar
}

// PlotReports renders an html page with the temperature, rain and wind charts of every report.
// More than one report also adds a comparison chart.
func PlotReports(w io.Writer, reports ...*Report) error {
	if len(reports) == 0 {
		return ErrNoReports
	}

	page := components.NewPage()
	page.PageTitle = "Weather Trends"
	if len(reports) > 1 {
		page.AddCharts(BarComparison(Comparison(reports)))
	}
	for _, r := range reports {
		page.AddCharts(
			LineReport(r),
			BarRainHumidity(r),
		)
		if r.Summary.WindSpeed != nil {
			page.AddCharts(LineWind(r))
		}
	}
	return page.Render(w)
}

// PlotReportsFile writes the html page from PlotReports to path
func PlotReportsFile(path string, reports ...*Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := PlotReports(file, reports...); err != nil {
		return fmt.Errorf("unable to render plot to %s, %w", path, err)
	}
	return file.Close()
}
