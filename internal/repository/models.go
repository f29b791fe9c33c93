package repository

import "time"

type User struct {
	ID       string `gorm:"type:varchar(36);primaryKey;autoIncrement:false"`
	Username string `gorm:"type:varchar(255);not null"`
}

type Exercise struct {
	ID          string    `gorm:"type:varchar(36);primaryKey;autoIncrement:false"`
	Username    string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Duration    float64   `gorm:"not null"`
	Date        time.Time `gorm:"not null;index"` // midnight UTC of the calendar day
}

// ExerciseFilter selects a user's exercises. Nil bounds are open.
type ExerciseFilter struct {
	Username string
	From     *time.Time
	To       *time.Time
	Limit    int
}
