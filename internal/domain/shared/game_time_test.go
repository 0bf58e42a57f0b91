package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

func TestGameTime_Periods(t *testing.T) {
	assert.Equal(t, 0.0, shared.GameTime(0).Periods())
	assert.Equal(t, 1.0, shared.GameTime(shared.UnitsPerPeriod).Periods())
	assert.Equal(t, 2.5, shared.GameTime(25_000_000).Periods())
}

func TestGameTime_Before(t *testing.T) {
	assert.True(t, shared.GameTime(5).Before(6))
	assert.False(t, shared.GameTime(6).Before(6))
	assert.False(t, shared.GameTime(7).Before(6))
}

func TestGameTime_Add(t *testing.T) {
	ts := shared.GameTime(100)
	assert.Equal(t, shared.GameTime(350), ts.Add(250))
	// The receiver is a value; Add never mutates it
	assert.Equal(t, shared.GameTime(100), ts)
}
