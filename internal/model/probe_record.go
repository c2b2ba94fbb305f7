package model

import "time"

// ProbeRecord backs the table the dormant probe query reads from.
type ProbeRecord struct {
	ID        uint      `gorm:"primarykey"`
	Label     string    `gorm:"not null"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time
}

func (ProbeRecord) TableName() string {
	return "table1"
}
