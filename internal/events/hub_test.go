package events_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/healthydev/internal/events"
	"github.com/stretchr/testify/assert"
)

func TestHub(t *testing.T) {
	hub := events.NewHub(2)
	owner, other := uuid.New(), uuid.New()
	ch, stop := hub.Listen(owner)

	hub.Publish(other, events.KindStreaks)
	hub.Publish(owner, events.KindSchedule)
	hub.Publish(owner, events.KindActivities)
	hub.Publish(owner, events.KindStreaks)

	assert.Equal(t, events.Change{Owner: owner, Kind: events.KindSchedule}, <-ch)
	assert.Equal(t, events.Change{Owner: owner, Kind: events.KindActivities}, <-ch)
	select {
	case c := <-ch:
		t.Fatalf("unexpected change %v beyond buffer", c)
	default:
	}

	stop()
	stop()
	_, open := <-ch
	assert.False(t, open)
	hub.Publish(owner, events.KindSchedule)
}
