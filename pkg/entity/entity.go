package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type BlockType string

const (
	BlockMorning BlockType = "morning"
	BlockWork    BlockType = "work"
	BlockHealth  BlockType = "health"
	BlockEvening BlockType = "evening"
)

type BlockStatus string

const (
	StatusUpcoming  BlockStatus = "upcoming"
	StatusCurrent   BlockStatus = "current"
	StatusCompleted BlockStatus = "completed"
	StatusSkipped   BlockStatus = "skipped"
)

// Terminal reports whether no further transition is allowed for the day.
func (s BlockStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// Streak types written by schedule completions. The set is open.
const (
	StreakDailyCompletion = "daily_completion"
	StreakExercise        = "exercise"
)

// Activity types derived from completed blocks.
const (
	ActivityExercise = "exercise"
	ActivityWork     = "work"
	ActivityStudy    = "study"
)

type ScheduleBlock struct {
	ID            uuid.UUID   `json:"id"`
	Owner         uuid.UUID   `json:"owner"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	TimeRange     string      `json:"time_range"`
	Type          BlockType   `json:"type"`
	Status        BlockStatus `json:"status"`
	ScheduledDate time.Time   `json:"scheduled_date"`
}

type Streak struct {
	ID               uuid.UUID  `json:"id"`
	Owner            uuid.UUID  `json:"owner"`
	StreakType       string     `json:"streak_type"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date"`
}

// Advance applies one qualifying completion on day today and reports whether
// the row changed. Same-day completions leave the streak untouched.
func (s Streak) Advance(today time.Time) (Streak, bool) {
	if s.LastActivityDate != nil {
		last := *s.LastActivityDate
		switch {
		case SameDay(last, today):
			return s, false
		case SameDay(last, today.AddDate(0, 0, -1)):
			s.CurrentStreak++
		default:
			s.CurrentStreak = 1
		}
	} else {
		s.CurrentStreak = 1
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	day := today
	s.LastActivityDate = &day
	return s, true
}

type Activity struct {
	ID              uuid.UUID      `json:"id"`
	Owner           uuid.UUID      `json:"owner"`
	ActivityType    string         `json:"activity_type"`
	Title           string         `json:"title"`
	DurationMinutes int            `json:"duration_minutes"`
	CompletedAt     time.Time      `json:"completed_at"`
	Date            time.Time      `json:"date"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

type HeatmapDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
	Level int       `json:"level"`
}

type DailyTotal struct {
	Date    time.Time `json:"date"`
	Count   int       `json:"count"`
	Minutes int       `json:"minutes"`
}

type WeeklyStats struct {
	Days         []DailyTotal   `json:"days"`
	TotalCount   int            `json:"total_count"`
	TotalMinutes int            `json:"total_minutes"`
	ByType       map[string]int `json:"by_type"`
}

type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Date truncates t to its calendar date in t's location, expressed as UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
