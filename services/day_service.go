package services

import (
	"context"

	"github.com/msetrainings/nutrition/models"
	"github.com/msetrainings/nutrition/utils"
)

// Totals are the summed macros of a set of foods.
type Totals struct {
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Calories      float64 `json:"calories"`
}

func (t *Totals) Add(f models.Food) {
	t.Protein += f.Protein
	t.Carbohydrates += f.Carbohydrates
	t.Fat += f.Fat
	t.Calories += f.Calories
}

func SumFoods(foods []models.Food) Totals {
	var t Totals
	for _, f := range foods {
		t.Add(f)
	}
	return t
}

type DayDetail struct {
	Date       models.LogDate `json:"date"`
	PrettyDate string         `json:"pretty_date"`
	Entries    []models.Food  `json:"entries"`
	Totals     Totals         `json:"totals"`
}

// DayService assembles a single day's view from the date and entry repositories.
type DayService struct {
	dates   *LogDateService
	entries *EntryService
}

func NewDayService(dates *LogDateService, entries *EntryService) *DayService {
	return &DayService{dates: dates, entries: entries}
}

// Detail returns ErrNotFound for an unknown date; a known date with no foods
// gets zero totals.
func (s *DayService) Detail(ctx context.Context, entryDate string) (*DayDetail, error) {
	ld, err := s.dates.Get(ctx, entryDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListForDate(ctx, ld.EntryDate)
	if err != nil {
		return nil, err
	}
	return &DayDetail{
		Date:       *ld,
		PrettyDate: utils.PrettyDate(ld.EntryDate),
		Entries:    entries,
		Totals:     SumFoods(entries),
	}, nil
}
