package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/healthydev/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUpRunsInReverseOrder(t *testing.T) {
	var order []string
	for _, name := range []string{"pool", "feed", "producer"} {
		cleanup.Register(&cleanup.Job{
			Name: name,
			F: func() error {
				order = append(order, name)
				if name == "feed" {
					return errors.New("already closed")
				}
				return nil
			},
		})
	}
	cleanup.CleanUp()
	assert.Equal(t, []string{"producer", "feed", "pool"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 3, "jobs run only once")
}
