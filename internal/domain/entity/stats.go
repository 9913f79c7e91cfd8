package entity

import "time"

// WeeklyBottleStat is one row of per-day bottle counts for a single user and
// calendar week. Rows are created and incremented by the add_bottles database
// procedure; this core only ever reads them.
type WeeklyBottleStat struct {
	WeekStart time.Time // Monday of the week, truncated to a date.
	Monday    int
	Tuesday   int
	Wednesday int
	Thursday  int
	Friday    int
	Saturday  int
	Sunday    int
	TotalWeek int
}

// ScoreboardEntry is a single leaderboard row. It deliberately carries no
// email or credential fields.
type ScoreboardEntry struct {
	Username     string
	IconURL      string
	TotalPoints  int
	TotalBottles int
}
