package screen

import (
	"testing"

	"github.com/lucky7xz/labelgrid/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdsScreens(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		widest core.Breakpoint
		active []core.Breakpoint
	}{
		{"Tiny", 20, core.XS, []core.Breakpoint{core.XS}},
		{"Just below sm", 59, core.XS, []core.Breakpoint{core.XS}},
		{"Exactly sm", 60, core.SM, []core.Breakpoint{core.SM}},
		{"Medium", 90, core.MD, []core.Breakpoint{core.SM, core.MD}},
		{"Large", 100, core.LG, []core.Breakpoint{core.SM, core.MD, core.LG}},
		{"Huge", 200, core.XXL, []core.Breakpoint{core.SM, core.MD, core.LG, core.XL, core.XXL}},
	}

	th := DefaultThresholds()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := th.Screens(tt.width)
			got, ok := s.Widest()
			require.True(t, ok)
			assert.Equal(t, tt.widest, got)

			var active []core.Breakpoint
			for _, bp := range core.Breakpoints {
				if s[bp] {
					active = append(active, bp)
				}
			}
			assert.ElementsMatch(t, tt.active, active)
		})
	}
}

func TestThresholdsScreens_CustomTable(t *testing.T) {
	th := Thresholds{core.MD: 40}
	s := th.Screens(50)
	assert.True(t, s[core.MD])
	assert.False(t, s[core.SM])
	// Without an sm threshold xs is always on.
	assert.True(t, s[core.XS])
}

func TestObserver_SubscribeAndDispatch(t *testing.T) {
	o := NewObserver(nil)

	var got []core.Screens
	tok := o.Subscribe(func(s core.Screens) { got = append(got, s) })
	assert.Empty(t, got, "nothing is delivered before the first width")
	assert.Nil(t, o.Current())

	assert.True(t, o.Dispatch(70))
	require.Len(t, got, 1)
	assert.True(t, got[0][core.SM])
	assert.Equal(t, 70, o.Width())

	// Same breakpoint set: no notification.
	assert.False(t, o.Dispatch(75))
	assert.Len(t, got, 1)
	assert.Equal(t, 75, o.Width())

	assert.True(t, o.Dispatch(130))
	require.Len(t, got, 2)
	bp, _ := got[1].Widest()
	assert.Equal(t, core.XL, bp)

	o.Unsubscribe(tok)
	o.Unsubscribe(tok)
	assert.Equal(t, 0, o.Subscribers())
	o.Dispatch(30)
	assert.Len(t, got, 2)
}

func TestObserver_LateSubscriberGetsSnapshot(t *testing.T) {
	o := NewObserver(nil)
	o.Dispatch(85)

	var got core.Screens
	o.Subscribe(func(s core.Screens) { got = s })
	require.NotNil(t, got)
	bp, _ := got.Widest()
	assert.Equal(t, core.MD, bp)

	// Subscribers receive copies.
	got[core.XXL] = true
	assert.False(t, o.Current()[core.XXL])
}

func TestObserver_DrivesController(t *testing.T) {
	o := NewObserver(nil)
	c := core.NewController(o, core.Props{
		Items:   []core.Item{{Label: "a"}, {Label: "b"}, {Label: "c"}},
		Columns: core.ColumnConfig{},
	})
	c.Activate()
	assert.Equal(t, 1, o.Subscribers())

	o.Dispatch(40)
	assert.Equal(t, 1, c.Grid().Columns)
	assert.Len(t, c.Grid().Rows, 3)

	o.Dispatch(120)
	assert.Equal(t, 3, c.Grid().Columns)
	assert.Len(t, c.Grid().Rows, 1)

	c.Deactivate()
	assert.Equal(t, 0, o.Subscribers())
}

func TestTerminalWidth_Fallbacks(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	assert.Equal(t, 132, TerminalWidth(-1))

	t.Setenv("COLUMNS", "nope")
	assert.Equal(t, DefaultWidth, TerminalWidth(-1))
}
