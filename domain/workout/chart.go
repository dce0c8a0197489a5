package workout

import "sort"

// ChartData is the top-page chart payload: completion counts grouped by
// menu name (pie) and by clear date (line).
type ChartData struct {
	Pie  map[string]int `json:"pie"`
	Line map[string]int `json:"line"`
}

// BuildChartData aggregates completed todos into pie and line counts.
// Items whose clear_date is still the sentinel are skipped.
func BuildChartData(todos []Todo) ChartData {
	data := ChartData{
		Pie:  map[string]int{},
		Line: map[string]int{},
	}
	for _, t := range todos {
		date, err := DecodeDate(t.ClearDate)
		if err != nil {
			continue
		}
		data.Pie[t.Name]++
		data.Line[date]++
	}
	return data
}

// TrendPoint is one sample of a per-menu metric over time. Average is the
// cumulative mean of the metric up to and including this point.
type TrendPoint struct {
	Date    string  `json:"date"`
	Value   float64 `json:"value"`
	Average float64 `json:"average"`
}

// TrendSeries orders completed todos by clear date and extracts a metric
// series with a running average, the shape the menu-analysis endpoint
// returns for weight and set counts.
func TrendSeries(todos []Todo, metric func(Todo) float64) []TrendPoint {
	type sample struct {
		date  string
		value float64
	}
	samples := make([]sample, 0, len(todos))
	for _, t := range todos {
		date, err := DecodeDate(t.ClearDate)
		if err != nil {
			continue
		}
		samples = append(samples, sample{date: date, value: metric(t)})
	}
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].date < samples[j].date })

	points := make([]TrendPoint, 0, len(samples))
	sum := 0.0
	for i, s := range samples {
		sum += s.value
		points = append(points, TrendPoint{
			Date:    s.date,
			Value:   s.value,
			Average: sum / float64(i+1),
		})
	}
	return points
}
