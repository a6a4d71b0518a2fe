package analyzer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	s := &scope{}
	assert.False(t, s.shadows("x"))

	err := s.replace([]string{"x"}, func() error {
		assert.True(t, s.shadows("x"))
		assert.False(t, s.shadows("y"))
		return s.enter([]string{"y"}, func() error {
			assert.True(t, s.shadows("x"), "outer member parameter stays visible")
			assert.True(t, s.shadows("y"))
			return s.replace(nil, func() error {
				assert.False(t, s.shadows("x"), "barrier hides outer frames")
				assert.False(t, s.shadows("y"))
				return nil
			})
		})
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, s.depth())
}

func TestScope_RestoresOnError(t *testing.T) {
	s := &scope{}
	failure := errors.New("cancelled")
	err := s.replace([]string{"a"}, func() error {
		return s.enter([]string{"b"}, func() error {
			assert.Equal(t, 2, s.depth())
			return failure
		})
	})
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 0, s.depth())
	assert.False(t, s.shadows("a"))

	s.frames = append(s.frames, frame{names: map[string]bool{"c": true}})
	s.reset()
	assert.False(t, s.shadows("c"))
}
