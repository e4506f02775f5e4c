package models

// FoodDate links a Food to a LogDate. The composite key keeps each pair unique.
type FoodDate struct {
	FoodID    uint    `gorm:"primaryKey;autoIncrement:false"`
	LogDateID uint    `gorm:"primaryKey;autoIncrement:false"`
	Food      Food    `gorm:"constraint:OnDelete:CASCADE"`
	LogDate   LogDate `gorm:"constraint:OnDelete:CASCADE"`
}

func (FoodDate) TableName() string { return "food_date" }

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{&Food{}, &LogDate{}, &FoodDate{}}
}
