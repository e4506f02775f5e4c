package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/msetrainings/nutrition/models"
	"github.com/msetrainings/nutrition/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FoodService struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewFoodService(db *gorm.DB, log logrus.FieldLogger) *FoodService {
	return &FoodService{db: db, log: log}
}

// FoodInput carries the user-supplied part of a food; calories are derived.
type FoodInput struct {
	Name          string
	Protein       float64
	Carbohydrates float64
	Fat           float64
}

// Create inserts a food unless one with the same (capitalized) name exists,
// in which case the stored row is left untouched and created is false.
func (s *FoodService) Create(ctx context.Context, in FoodInput) (created bool, err error) {
	name := utils.CapitalizeName(in.Name)
	if name == "" {
		return false, fmt.Errorf("%w: a name is required", ErrInvalidFood)
	}
	if err := checkMacros(in); err != nil {
		return false, err
	}

	exists, err := s.exists(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		s.log.WithField("name", name).Debug("food already registered, ignored")
		return false, nil
	}

	food := &models.Food{
		Name:          name,
		Protein:       in.Protein,
		Carbohydrates: in.Carbohydrates,
		Fat:           in.Fat,
		Calories:      utils.Calories(in.Protein, in.Carbohydrates, in.Fat),
	}
	if err := s.db.WithContext(ctx).Create(food).Error; err != nil {
		// lost a race with another insert of the same name
		if again, recheckErr := s.exists(ctx, name); recheckErr == nil && again {
			return false, nil
		}
		return false, fmt.Errorf("create food %s: %w", name, err)
	}
	return true, nil
}

func (s *FoodService) List(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	err := s.db.WithContext(ctx).Order("id").Find(&foods).Error
	return foods, err
}

func (s *FoodService) Get(ctx context.Context, name string) (*models.Food, error) {
	name = utils.CapitalizeName(name)
	var food models.Food
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("food %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// Update rewrites the macros of the named food together with the derived
// calories in a single statement. Unknown names are a no-op.
func (s *FoodService) Update(ctx context.Context, name string, in FoodInput) error {
	name = utils.CapitalizeName(name)
	if err := checkMacros(in); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).
		Model(&models.Food{}).
		Where("name = ?", name).
		Updates(map[string]interface{}{
			"protein":       in.Protein,
			"carbohydrates": in.Carbohydrates,
			"fat":           in.Fat,
			"calories":      utils.Calories(in.Protein, in.Carbohydrates, in.Fat),
		})
	if res.Error != nil {
		return fmt.Errorf("update food %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		s.log.WithField("name", name).Debug("update of unknown food ignored")
	}
	return nil
}

// Delete removes the named food and unlinks it from every date.
// Unknown names are a no-op.
func (s *FoodService) Delete(ctx context.Context, name string) error {
	name = utils.CapitalizeName(name)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var food models.Food
		err := tx.Where("name = ?", name).First(&food).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("food_id = ?", food.ID).Delete(&models.FoodDate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&food).Error
	})
}

// checkMacros rejects NaN and infinities, which parse as floats but cannot
// be stored or summed.
func checkMacros(in FoodInput) error {
	values := []float64{in.Protein, in.Carbohydrates, in.Fat, utils.Calories(in.Protein, in.Carbohydrates, in.Fat)}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: protein, carbohydrates and fat must be finite numbers", ErrInvalidFood)
		}
	}
	return nil
}

func (s *FoodService) exists(ctx context.Context, name string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Food{}).Where("name = ?", name).Count(&n).Error
	return n > 0, err
}
