package models

// One logged calendar day. EntryDate holds the canonical YYYYMMDD form.
type LogDate struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	EntryDate string `gorm:"type:varchar(8);uniqueIndex;not null" json:"entry_date"`
}

func (LogDate) TableName() string { return "log_date" }
