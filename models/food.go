package models

// A reusable food definition. Calories is always derived from the macros.
type Food struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Protein       float64 `gorm:"not null;default:0" json:"protein"`
	Carbohydrates float64 `gorm:"not null;default:0" json:"carbohydrates"`
	Fat           float64 `gorm:"not null;default:0" json:"fat"`
	Calories      float64 `gorm:"not null;default:0" json:"calories"`
}

func (Food) TableName() string { return "food" }
