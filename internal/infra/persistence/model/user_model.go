package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	Username       string    `gorm:"type:varchar(100);unique;not null"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	Institution    string    `gorm:"type:varchar(255)"`
	IconURL        string    `gorm:"type:text;column:icon_url"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Totals *UserTotalsModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserTotalsModel mirrors the 'user_totals' table. Rows are maintained by the
// add_bottles procedure; the application only reads them.
type UserTotalsModel struct {
	UserID       uuid.UUID `gorm:"primaryKey"`
	TotalBottles int
	TotalPoints  int
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserTotalsModel) TableName() string {
	return "user_totals"
}

// WeeklyBottleStatModel mirrors the 'weekly_bottle_stats' table, one row per
// (user, week). Also written exclusively by add_bottles.
type WeeklyBottleStatModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	WeekStart time.Time `gorm:"primaryKey;type:date"`
	Monday    int
	Tuesday   int
	Wednesday int
	Thursday  int
	Friday    int
	Saturday  int
	Sunday    int
	TotalWeek int
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeeklyBottleStatModel) TableName() string {
	return "weekly_bottle_stats"
}
