package service

import "github.com/limbo/healthydev/pkg/entity"

// CompletionDurationMinutes is logged for every completed block. Elapsed time is not measured.
const CompletionDurationMinutes = 60

// DefaultSchedule returns the starter day seeded into an empty date, in display order.
func DefaultSchedule() []entity.ScheduleBlock {
	return []entity.ScheduleBlock{
		{
			Title:       "Morning Routine",
			TimeRange:   "4:00 - 6:30 AM",
			Description: "Wake up, motivational quote, coding contest practice prep",
			Type:        entity.BlockMorning,
			Status:      entity.StatusUpcoming,
		},
		{
			Title:       "Exercise & Freshening",
			TimeRange:   "5:00 - 6:30 AM",
			Description: "Stretches, cardio, shower and prepare for the day",
			Type:        entity.BlockHealth,
			Status:      entity.StatusUpcoming,
		},
		{
			Title:       "Work/Study Block",
			TimeRange:   "9:00 AM - 12:00 PM",
			Description: "Focus time for main work or study tasks",
			Type:        entity.BlockWork,
			Status:      entity.StatusCurrent,
		},
		{
			Title:       "Email Check",
			TimeRange:   "11:00 AM",
			Description: "Scheduled email review and responses",
			Type:        entity.BlockWork,
			Status:      entity.StatusUpcoming,
		},
		{
			Title:       "Afternoon Focus",
			TimeRange:   "2:00 - 5:00 PM",
			Description: "Deep work session with smart break scheduling",
			Type:        entity.BlockWork,
			Status:      entity.StatusUpcoming,
		},
		{
			Title:       "Project Learning",
			TimeRange:   "8:00 - 9:00 PM",
			Description: "Tech learning and personal project development",
			Type:        entity.BlockEvening,
			Status:      entity.StatusUpcoming,
		},
		{
			Title:       "Interview Prep",
			TimeRange:   "10:00 - 11:00 PM",
			Description: "Daily interview questions and revision",
			Type:        entity.BlockEvening,
			Status:      entity.StatusUpcoming,
		},
	}
}

// ActivityTypeFor maps a completed block's type to the logged activity type.
func ActivityTypeFor(t entity.BlockType) string {
	switch t {
	case entity.BlockHealth:
		return entity.ActivityExercise
	case entity.BlockWork:
		return entity.ActivityWork
	default:
		return entity.ActivityStudy
	}
}
