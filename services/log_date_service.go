package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/msetrainings/nutrition/models"
	"github.com/msetrainings/nutrition/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LogDateService struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewLogDateService(db *gorm.DB, log logrus.FieldLogger) *LogDateService {
	return &LogDateService{db: db, log: log}
}

// DaySummary is one row of the home page: a logged date and its macro sums.
type DaySummary struct {
	EntryDate     string  `json:"entry_date"`
	PrettyDate    string  `gorm:"-" json:"pretty_date"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Calories      float64 `json:"calories"`
}

// Create stores rawDate (YYYY-MM-DD) in canonical form. A date that is
// already logged is left alone and created is false.
func (s *LogDateService) Create(ctx context.Context, rawDate string) (created bool, err error) {
	canonical, err := utils.CanonicalDate(rawDate)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidDateFormat, rawDate)
	}

	exists, err := s.exists(ctx, canonical)
	if err != nil || exists {
		if exists {
			s.log.WithField("entry_date", canonical).Debug("log date already exists, ignored")
		}
		return false, err
	}

	if err := s.db.WithContext(ctx).Create(&models.LogDate{EntryDate: canonical}).Error; err != nil {
		// lost a race with another insert of the same date
		if again, recheckErr := s.exists(ctx, canonical); recheckErr == nil && again {
			return false, nil
		}
		return false, fmt.Errorf("create log date %s: %w", canonical, err)
	}
	return true, nil
}

// ListWithTotals returns every logged date, newest first, with macro sums.
// Dates with no foods report zeros.
func (s *LogDateService) ListWithTotals(ctx context.Context) ([]DaySummary, error) {
	var rows []DaySummary
	err := s.db.WithContext(ctx).
		Table("log_date").
		Select(`log_date.entry_date AS entry_date,
			COALESCE(SUM(food.protein), 0.0) AS protein,
			COALESCE(SUM(food.carbohydrates), 0.0) AS carbohydrates,
			COALESCE(SUM(food.fat), 0.0) AS fat,
			COALESCE(SUM(food.calories), 0.0) AS calories`).
		Joins("LEFT JOIN food_date ON food_date.log_date_id = log_date.id").
		Joins("LEFT JOIN food ON food.id = food_date.food_id").
		Group("log_date.id, log_date.entry_date").
		Order("log_date.entry_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].PrettyDate = utils.PrettyDate(rows[i].EntryDate)
	}
	return rows, nil
}

// Get looks a date up by its canonical form.
func (s *LogDateService) Get(ctx context.Context, entryDate string) (*models.LogDate, error) {
	var ld models.LogDate
	err := s.db.WithContext(ctx).Where("entry_date = ?", entryDate).First(&ld).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("date %s: %w", entryDate, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &ld, nil
}

// Delete removes a date and every food logged on it. Unknown dates are a no-op.
func (s *LogDateService) Delete(ctx context.Context, entryDate string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ld models.LogDate
		err := tx.Where("entry_date = ?", entryDate).First(&ld).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("log_date_id = ?", ld.ID).Delete(&models.FoodDate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ld).Error
	})
}

func (s *LogDateService) exists(ctx context.Context, entryDate string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.LogDate{}).Where("entry_date = ?", entryDate).Count(&n).Error
	return n > 0, err
}
