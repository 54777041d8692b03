package httphandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageFailureNotice(t *testing.T) {

	t.Run("FiresOnceAtThreshold", func(t *testing.T) {
		n := NewImageFailureNotice(3)

		assert.False(t, n.Observe())
		assert.False(t, n.Observe())
		assert.True(t, n.Observe())
		assert.False(t, n.Observe())
		assert.Equal(t, 4, n.Count())
	})

	t.Run("ThresholdClampedToOne", func(t *testing.T) {
		n := NewImageFailureNotice(0)
		assert.True(t, n.Observe())
	})
}

func TestSessionNotices(t *testing.T) {
	s := NewSessionNotices(2)

	assert.False(t, s.Observe("sess-1"))
	assert.False(t, s.Observe("sess-2"))

	// each session counts independently
	assert.True(t, s.Observe("sess-1"))
	assert.True(t, s.Observe("sess-2"))

	assert.False(t, s.Observe("sess-1"))
}
