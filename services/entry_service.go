package services

import (
	"context"
	"fmt"

	"github.com/msetrainings/nutrition/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryService manages which foods are logged on which date.
type EntryService struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewEntryService(db *gorm.DB, log logrus.FieldLogger) *EntryService {
	return &EntryService{db: db, log: log}
}

// Add logs a food on a date. Logging the same pair twice is a no-op.
func (s *EntryService) Add(ctx context.Context, foodID, logDateID uint) (created bool, err error) {
	db := s.db.WithContext(ctx)

	var foods int64
	if err := db.Model(&models.Food{}).Where("id = ?", foodID).Count(&foods).Error; err != nil {
		return false, err
	}
	if foods == 0 {
		return false, fmt.Errorf("food id %d: %w", foodID, ErrNotFound)
	}

	var pairs int64
	err = db.Model(&models.FoodDate{}).
		Where("food_id = ? AND log_date_id = ?", foodID, logDateID).
		Count(&pairs).Error
	if err != nil {
		return false, err
	}
	if pairs > 0 {
		s.log.WithFields(logrus.Fields{"food_id": foodID, "log_date_id": logDateID}).
			Debug("food already logged on date, ignored")
		return false, nil
	}

	if err := db.Omit(clause.Associations).Create(&models.FoodDate{FoodID: foodID, LogDateID: logDateID}).Error; err != nil {
		return false, fmt.Errorf("log food %d on date %d: %w", foodID, logDateID, err)
	}
	return true, nil
}

// Remove unlinks a food from a date. Missing pairs are a no-op.
func (s *EntryService) Remove(ctx context.Context, foodID, logDateID uint) error {
	return s.db.WithContext(ctx).
		Where("food_id = ? AND log_date_id = ?", foodID, logDateID).
		Delete(&models.FoodDate{}).Error
}

// ListForDate returns the foods logged on entryDate (canonical form).
// A date without entries, or one that does not exist, yields an empty slice.
func (s *EntryService) ListForDate(ctx context.Context, entryDate string) ([]models.Food, error) {
	foods := []models.Food{}
	err := s.db.WithContext(ctx).
		Model(&models.Food{}).
		Select("food.*").
		Joins("JOIN food_date ON food_date.food_id = food.id").
		Joins("JOIN log_date ON log_date.id = food_date.log_date_id").
		Where("log_date.entry_date = ?", entryDate).
		Order("food.name").
		Find(&foods).Error
	return foods, err
}
