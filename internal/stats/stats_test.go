package stats

import (
	"math"
	"testing"
	"time"

	"plantdiary/internal/models"
	"plantdiary/internal/timeutil"
)

func at(t time.Time) timeutil.Timestamp {
	return timeutil.Timestamp(t.UnixMilli())
}

func rec(plantID string, typ models.RecordType, t time.Time) models.Record {
	return models.Record{ID: plantID + t.String(), PlantID: plantID, Type: typ, RecordTime: at(t)}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, total int
		want        float64
	}{
		{part: 0, total: 0, want: 0},
		{part: 3, total: 0, want: 0},
		{part: 1, total: 3, want: 33.3},
		{part: 2, total: 3, want: 66.7},
		{part: 4, total: 4, want: 100},
	}
	for _, tt := range tests {
		if got := percent(tt.part, tt.total); got != tt.want {
			t.Errorf("percent(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestTypeDistribution_Empty(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	got := MonthTypeDistribution(nil, now)

	if got.Total != 0 {
		t.Errorf("Total = %d, want 0", got.Total)
	}
	if len(got.Types) != len(models.AllRecordTypes()) {
		t.Fatalf("len(Types) = %d, want %d", len(got.Types), len(models.AllRecordTypes()))
	}
	for _, tc := range got.Types {
		if tc.Count != 0 || tc.Percent != 0 {
			t.Errorf("%s = %d/%v, want zero", tc.Type, tc.Count, tc.Percent)
		}
		if math.IsNaN(tc.Percent) {
			t.Errorf("%s percent is NaN", tc.Type)
		}
	}
}

func TestMonthTypeDistribution(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	records := []models.Record{
		rec("a", models.RecordWatering, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)),
		rec("a", models.RecordWatering, time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)),
		rec("b", models.RecordPhoto, time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC)),
		// outside the window
		rec("a", models.RecordWatering, time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)),
		rec("a", models.RecordGrowth, time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC)),
	}

	got := MonthTypeDistribution(records, now)
	if got.Total != 3 {
		t.Fatalf("Total = %d, want 3", got.Total)
	}

	want := map[models.RecordType]struct {
		count   int
		percent float64
	}{
		models.RecordWatering:    {2, 66.7},
		models.RecordFertilizing: {0, 0},
		models.RecordGrowth:      {0, 0},
		models.RecordPhoto:       {1, 33.3},
	}
	for _, tc := range got.Types {
		w := want[tc.Type]
		if tc.Count != w.count || tc.Percent != w.percent {
			t.Errorf("%s = %d/%v, want %d/%v", tc.Type, tc.Count, tc.Percent, w.count, w.percent)
		}
		if tc.Label == "" {
			t.Errorf("%s has no label", tc.Type)
		}
	}
}

func TestDailyTrend(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	records := []models.Record{
		rec("a", models.RecordWatering, time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)),
		rec("a", models.RecordWatering, time.Date(2024, 3, 13, 7, 0, 0, 0, time.UTC)),
		rec("b", models.RecordGrowth, time.Date(2024, 3, 13, 20, 0, 0, 0, time.UTC)),
		rec("b", models.RecordGrowth, time.Date(2024, 3, 13, 23, 59, 0, 0, time.UTC)),
		rec("b", models.RecordGrowth, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)),
		rec("b", models.RecordGrowth, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := DailyTrend(records, 7, now)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	if got[0].Label != "03-15" || got[6].Label != "03-09" {
		t.Errorf("labels = %s..%s, want newest first 03-15..03-09", got[0].Label, got[6].Label)
	}
	if got[0].Count != 1 || got[0].Percent != 25 {
		t.Errorf("today = %d/%v, want 1/25", got[0].Count, got[0].Percent)
	}
	if got[2].Count != 4 || got[2].Percent != 100 {
		t.Errorf("03-13 = %d/%v, want 4/100", got[2].Count, got[2].Percent)
	}
	if got[1].Count != 0 || got[1].Percent != 0 {
		t.Errorf("03-14 = %d/%v, want 0/0", got[1].Count, got[1].Percent)
	}
}

func TestDailyTrend_Empty(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	got := DailyTrend(nil, 30, now)
	if len(got) != 30 {
		t.Fatalf("len = %d, want 30", len(got))
	}
	for _, p := range got {
		if p.Count != 0 || p.Percent != 0 {
			t.Errorf("%s = %d/%v, want zero", p.Label, p.Count, p.Percent)
		}
	}
	if got := DailyTrend(nil, 0, now); len(got) != 0 {
		t.Errorf("DailyTrend(0 days) len = %d, want 0", len(got))
	}
}

func TestMonthlyTrend(t *testing.T) {
	now := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	records := []models.Record{
		rec("a", models.RecordWatering, time.Date(2024, 2, 1, 7, 0, 0, 0, time.UTC)),
		rec("a", models.RecordWatering, time.Date(2023, 12, 31, 7, 0, 0, 0, time.UTC)),
		rec("a", models.RecordWatering, time.Date(2023, 12, 1, 7, 0, 0, 0, time.UTC)),
		rec("a", models.RecordWatering, time.Date(2023, 11, 30, 7, 0, 0, 0, time.UTC)),
	}

	got := MonthlyTrend(records, 3, now)
	wantLabels := []string{"2024-02", "2024-01", "2023-12"}
	wantCounts := []int{1, 0, 2}
	wantPercent := []float64{50, 0, 100}
	for i, p := range got {
		if p.Label != wantLabels[i] || p.Count != wantCounts[i] || p.Percent != wantPercent[i] {
			t.Errorf("point %d = %s %d/%v, want %s %d/%v", i, p.Label, p.Count, p.Percent,
				wantLabels[i], wantCounts[i], wantPercent[i])
		}
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		count, max int
		want       int
	}{
		{count: 0, max: 8, want: 0},
		{count: 1, max: 8, want: 1},
		{count: 2, max: 8, want: 1},
		{count: 3, max: 8, want: 2},
		{count: 4, max: 8, want: 2},
		{count: 5, max: 8, want: 3},
		{count: 6, max: 8, want: 3},
		{count: 7, max: 8, want: 4},
		{count: 8, max: 8, want: 4},
		{count: 1, max: 1, want: 4},
		{count: 0, max: 0, want: 0},
	}
	for _, tt := range tests {
		if got := Level(tt.count, tt.max); got != tt.want {
			t.Errorf("Level(%d, %d) = %d, want %d", tt.count, tt.max, got, tt.want)
		}
	}
}

func findCell(t *testing.T, cal Calendar, date time.Time) Cell {
	t.Helper()
	for _, week := range cal.Weeks {
		for _, c := range week {
			if c.Date.Equal(date) {
				return c
			}
		}
	}
	t.Fatalf("no cell for %s", date.Format("2006-01-02"))
	return Cell{}
}

func TestHeatmap(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	var records []models.Record
	add := func(d, n int) {
		for i := 0; i < n; i++ {
			records = append(records, rec("a", models.RecordWatering, day(d).Add(time.Duration(i)*time.Hour)))
		}
	}
	add(5, 8)
	add(6, 2)
	add(7, 5)
	// April is ignored.
	records = append(records, rec("a", models.RecordWatering, time.Date(2024, 4, 1, 1, 0, 0, 0, time.UTC)))

	cal := Heatmap(records, 2024, time.March, time.UTC)

	if cal.Max != 8 || cal.Total != 15 {
		t.Errorf("Max/Total = %d/%d, want 8/15", cal.Max, cal.Total)
	}
	// March 2024 starts on a Friday and ends on a Sunday.
	if len(cal.Weeks) != 5 {
		t.Fatalf("weeks = %d, want 5", len(cal.Weeks))
	}
	if first := cal.Weeks[0][0]; first.Date.Weekday() != time.Monday || first.Level != LevelPadding || first.InMonth {
		t.Errorf("first cell = %+v, want Monday padding", first)
	}
	if got := cal.Weeks[0][4]; !got.Date.Equal(day(1)) || got.Level != 0 {
		t.Errorf("Weeks[0][4] = %+v, want March 1 level 0", got)
	}

	tests := []struct {
		day       int
		wantCount int
		wantLevel int
	}{
		{day: 5, wantCount: 8, wantLevel: 4},
		{day: 6, wantCount: 2, wantLevel: 1},
		{day: 7, wantCount: 5, wantLevel: 3},
		{day: 8, wantCount: 0, wantLevel: 0},
	}
	for _, tt := range tests {
		c := findCell(t, cal, day(tt.day))
		if c.Count != tt.wantCount || c.Level != tt.wantLevel {
			t.Errorf("March %d = %d/level %d, want %d/level %d", tt.day, c.Count, c.Level, tt.wantCount, tt.wantLevel)
		}
	}

	padding := findCell(t, cal, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	if padding.Level != LevelPadding {
		t.Errorf("Feb 29 level = %d, want %d", padding.Level, LevelPadding)
	}
}

func TestHeatmap_TrailingPadding(t *testing.T) {
	// April 2024 starts on a Monday and ends on a Tuesday.
	cal := Heatmap(nil, 2024, time.April, time.UTC)

	if len(cal.Weeks) != 5 {
		t.Fatalf("weeks = %d, want 5", len(cal.Weeks))
	}
	if c := cal.Weeks[0][0]; !c.InMonth || c.Day != 1 {
		t.Errorf("first cell = %+v, want April 1", c)
	}
	last := cal.Weeks[4]
	if !last[1].InMonth || last[1].Day != 30 {
		t.Errorf("Weeks[4][1] = %+v, want April 30", last[1])
	}
	for d := 2; d < 7; d++ {
		if last[d].Level != LevelPadding {
			t.Errorf("Weeks[4][%d] level = %d, want padding", d, last[d].Level)
		}
	}
	if cal.Max != 0 || cal.Total != 0 {
		t.Errorf("empty month Max/Total = %d/%d", cal.Max, cal.Total)
	}
}

func TestActivityRanking_Stable(t *testing.T) {
	plants := []models.Plant{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}, {ID: "d", Name: "D"}}
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []models.Record{
		rec("b", models.RecordWatering, base),
		rec("d", models.RecordWatering, base.Add(time.Hour)),
		rec("c", models.RecordWatering, base.Add(2*time.Hour)),
		rec("c", models.RecordWatering, base.Add(3*time.Hour)),
		rec("gone", models.RecordWatering, base.Add(4*time.Hour)),
	}

	got := ActivityRanking(plants, records)
	wantIDs := []string{"c", "b", "d", "a"}
	wantCounts := []int{2, 1, 1, 0}
	if len(got) != len(wantIDs) {
		t.Fatalf("len = %d, want %d", len(got), len(wantIDs))
	}
	for i := range got {
		if got[i].Plant.ID != wantIDs[i] || got[i].RecordCount != wantCounts[i] {
			t.Errorf("rank %d = %s/%d, want %s/%d", i, got[i].Plant.ID, got[i].RecordCount, wantIDs[i], wantCounts[i])
		}
	}

	if got := ActivityRanking(nil, nil); len(got) != 0 {
		t.Errorf("empty ranking len = %d", len(got))
	}
}

func TestStatusDistribution(t *testing.T) {
	if got := StatusDistribution(nil); len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	} else {
		for _, s := range got {
			if s.Count != 0 || s.Percent != 0 {
				t.Errorf("empty %s = %d/%v", s.Status, s.Count, s.Percent)
			}
		}
	}

	plants := []models.Plant{
		{Status: models.StatusHealthy},
		{Status: models.StatusHealthy},
		{Status: models.StatusHealthy},
		{Status: models.StatusDiseased},
	}
	got := StatusDistribution(plants)
	for _, s := range got {
		switch s.Status {
		case models.StatusHealthy:
			if s.Count != 3 || s.Percent != 75 {
				t.Errorf("healthy = %d/%v, want 3/75", s.Count, s.Percent)
			}
		case models.StatusDiseased:
			if s.Count != 1 || s.Percent != 25 {
				t.Errorf("diseased = %d/%v, want 1/25", s.Count, s.Percent)
			}
		default:
			if s.Count != 0 {
				t.Errorf("%s = %d, want 0", s.Status, s.Count)
			}
		}
	}
}

func TestOverview(t *testing.T) {
	next := timeutil.Timestamp(1)
	got := Overview(
		[]models.Plant{{ID: "a"}},
		[]models.Record{{ID: "r1"}, {ID: "r2"}},
		[]models.Reminder{{ID: "m1", IsEnabled: true}, {ID: "m2", NextRemindTime: &next}},
	)
	want := Summary{Plants: 1, Records: 2, Reminders: 2, ActiveReminders: 1}
	if got != want {
		t.Errorf("Overview() = %+v, want %+v", got, want)
	}
	if got := Overview(nil, nil, nil); got != (Summary{}) {
		t.Errorf("Overview(nil) = %+v", got)
	}
}
