package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSaveEventRequest_Validate(t *testing.T) {
	starts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	dayBefore := starts.AddDate(0, 0, -1)
	dayAfter := starts.AddDate(0, 0, 1)

	t.Run("valid with open end", func(t *testing.T) {
		req := SaveEventRequest{Name: "Spring Festival", StartsAt: starts}
		assert.NoError(t, req.Validate())
	})

	t.Run("valid with end after start", func(t *testing.T) {
		req := SaveEventRequest{Name: "Spring Festival", StartsAt: starts, EndsAt: &dayAfter}
		assert.NoError(t, req.Validate())
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		req := SaveEventRequest{Name: "Spring Festival", StartsAt: starts, EndsAt: &dayBefore}
		assert.ErrorIs(t, req.Validate(), errEndsBeforeStarts)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		req := SaveEventRequest{StartsAt: starts}
		assert.Error(t, req.Validate())
	})
}
