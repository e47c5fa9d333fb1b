package stats

import (
	"sort"

	"plantdiary/internal/models"
)

// PlantActivity is a plant with its record count.
type PlantActivity struct {
	Plant       models.Plant `json:"plant"`
	RecordCount int          `json:"recordCount"`
}

// ActivityRanking orders plants by record count, most active first.
// Plants with equal counts keep their collection order.
func ActivityRanking(plants []models.Plant, records []models.Record) []PlantActivity {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.PlantID]++
	}

	ranking := make([]PlantActivity, 0, len(plants))
	for _, p := range plants {
		ranking = append(ranking, PlantActivity{Plant: p, RecordCount: counts[p.ID]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].RecordCount > ranking[j].RecordCount
	})
	return ranking
}
