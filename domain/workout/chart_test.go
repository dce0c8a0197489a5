package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartData(t *testing.T) {
	todos := []Todo{
		{Name: "squat", ClearDate: "2026-08-28T00:00:00.000000", IsCleared: true},
		{Name: "squat", ClearDate: "2026-08-29T00:00:00.000000", IsCleared: true},
		{Name: "bench", ClearDate: "2026-08-29T00:00:00.000000", IsCleared: true},
		{Name: "row", ClearDate: ClearDateSentinel},
	}

	data := BuildChartData(todos)

	assert.Equal(t, map[string]int{"squat": 2, "bench": 1}, data.Pie)
	assert.Equal(t, map[string]int{"2026-08-28": 1, "2026-08-29": 2}, data.Line)
}

func TestBuildChartDataEmpty(t *testing.T) {
	data := BuildChartData(nil)
	assert.Empty(t, data.Pie)
	assert.Empty(t, data.Line)
	assert.NotNil(t, data.Pie)
	assert.NotNil(t, data.Line)
}

func TestTrendSeries(t *testing.T) {
	todos := []Todo{
		{Name: "squat", Weight: 100, ClearDate: "2026-08-29T00:00:00.000000", IsCleared: true},
		{Name: "squat", Weight: 80, ClearDate: "2026-08-27T00:00:00.000000", IsCleared: true},
		{Name: "squat", Weight: 90, ClearDate: "2026-08-28T00:00:00.000000", IsCleared: true},
		{Name: "squat", Weight: 70, ClearDate: ClearDateSentinel},
	}

	points := TrendSeries(todos, func(t Todo) float64 { return float64(t.Weight) })

	require.Len(t, points, 3)
	assert.Equal(t, "2026-08-27", points[0].Date)
	assert.Equal(t, 80.0, points[0].Value)
	assert.Equal(t, 80.0, points[0].Average)

	assert.Equal(t, "2026-08-28", points[1].Date)
	assert.Equal(t, 90.0, points[1].Value)
	assert.Equal(t, 85.0, points[1].Average)

	assert.Equal(t, "2026-08-29", points[2].Date)
	assert.Equal(t, 100.0, points[2].Value)
	assert.Equal(t, 90.0, points[2].Average)
}

func TestTrendSeriesEmpty(t *testing.T) {
	points := TrendSeries(nil, func(t Todo) float64 { return 0 })
	assert.Empty(t, points)
}
