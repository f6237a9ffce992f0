package cookie

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/santa-exe/internal/random"
)

func TestClickAddsPowerAndComments(t *testing.T) {
	g := NewGame(random.Fixed(0), time.Hour, nil)
	defer g.Close()

	st, err := g.Click()
	require.NoError(t, err)
	assert.Equal(t, 1.0, st.Cookies)
	assert.Equal(t, santaComments[0], st.Comment)
}

func TestUpgradesRequireCookies(t *testing.T) {
	g := NewGame(random.Fixed(0), time.Hour, nil)
	defer g.Close()

	_, err := g.BuyPowerUp()
	require.ErrorIs(t, err, ErrNotEnoughCookies)
	_, err = g.BuyHelper()
	require.ErrorIs(t, err, ErrNotEnoughCookies)

	for i := 0; i < PowerUpCost; i++ {
		_, err := g.Click()
		require.NoError(t, err)
	}
	st, err := g.BuyPowerUp()
	require.NoError(t, err)
	assert.Equal(t, 0.0, st.Cookies)
	assert.Equal(t, 2.0, st.Power)
}

func TestHelperTicksAndStopsOnClose(t *testing.T) {
	var ticks atomic.Int32
	g := NewGame(random.Fixed(0), 2*time.Millisecond, func(State) { ticks.Add(1) })

	for i := 0; i < HelperCost; i++ {
		_, err := g.Click()
		require.NoError(t, err)
	}
	st, err := g.BuyHelper()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Helpers)
	assert.Equal(t, 0.0, st.Cookies)

	require.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, time.Millisecond)
	g.Close()

	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "helper kept baking after Close")

	_, err = g.Click()
	assert.ErrorIs(t, err, ErrGameClosed)
	g.Close()
}

func TestTickUsesCurrentPower(t *testing.T) {
	g := NewGame(random.Fixed(0), time.Hour, nil)
	defer g.Close()

	g.mu.Lock()
	g.cookies = 250
	g.mu.Unlock()

	_, err := g.BuyHelper()
	require.NoError(t, err)
	_, err = g.BuyPowerUp()
	require.NoError(t, err)

	st := g.Tick()
	assert.Equal(t, 1.0, st.Cookies)
	assert.False(t, st.Achievement)
}
