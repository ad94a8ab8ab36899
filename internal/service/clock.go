package service

import (
	"time"

	"github.com/limbo/healthydev/pkg/entity"
)

// Clock decides what "today" is for every engine operation.
type Clock interface {
	Now() time.Time
	// Today returns the current calendar date as UTC midnight
	Today() time.Time
}

type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

func (c SystemClock) Today() time.Time {
	return entity.Date(c.Now())
}
