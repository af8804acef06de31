package core

import "fmt"

// Size selects the cell padding used by renderers.
type Size string

const (
	SizeDefault Size = "default"
	SizeMiddle  Size = "middle"
	SizeSmall   Size = "small"
)

// Sizes lists the accepted size modifiers in cycling order.
var Sizes = []Size{SizeDefault, SizeMiddle, SizeSmall}

// ParseSize accepts "", "default", "middle" or "small".
func ParseSize(s string) (Size, error) {
	if s == "" {
		return SizeDefault, nil
	}
	for _, sz := range Sizes {
		if string(sz) == s {
			return sz, nil
		}
	}
	return "", fmt.Errorf("unknown size %q (want default, middle or small)", s)
}

// Next returns the size after s, wrapping around.
func (s Size) Next() Size {
	if s == "" {
		s = SizeDefault
	}
	for i, sz := range Sizes {
		if sz == s {
			return Sizes[(i+1)%len(Sizes)]
		}
	}
	return SizeDefault
}

// Props are the inputs of one layout pass.
type Props struct {
	Title    string
	Extra    string
	Items    []Item
	Columns  ColumnConfig
	Bordered bool
	Size     Size
	Colon    bool
	// Prefix is passed through to renderers untouched.
	Prefix string
}

// Grid is the result of a layout pass, ready for a renderer.
type Grid struct {
	Title      string     `json:"title,omitempty"`
	Extra      string     `json:"extra,omitempty"`
	Bordered   bool       `json:"bordered"`
	Size       Size       `json:"size"`
	Colon      bool       `json:"colon"`
	Prefix     string     `json:"prefix,omitempty"`
	Breakpoint Breakpoint `json:"breakpoint,omitempty"`
	Columns    int        `json:"columns"`
	Rows       [][]Cell   `json:"rows"`
}

// Units returns the number of grid units a row of this grid spans.
func (g Grid) Units() int {
	if g.Bordered {
		return 2 * g.Columns
	}
	return g.Columns
}

// Layout runs one full pass: resolve the column count, partition the items
// and render each row. It never fails; problems are reported through warn.
func Layout(props Props, screens Screens, warn Warnf) Grid {
	columns := ResolveColumns(props.Columns, screens)
	if columns < 1 {
		columns = 1
	}

	size := props.Size
	if size == "" {
		size = SizeDefault
	}

	g := Grid{
		Title:    props.Title,
		Extra:    props.Extra,
		Bordered: props.Bordered,
		Size:     size,
		Colon:    props.Colon,
		Prefix:   props.Prefix,
		Columns:  columns,
	}
	if bp, ok := screens.Widest(); ok {
		g.Breakpoint = bp
	}

	rows := Partition(props.Items, columns, warn)
	g.Rows = make([][]Cell, 0, len(rows))
	for i, row := range rows {
		g.Rows = append(g.Rows, RenderRow(row, columns, i == len(rows)-1, props.Bordered))
	}
	return g
}

// Token identifies one observer subscription.
type Token int

// Observer delivers breakpoint snapshots to subscribers.
type Observer interface {
	Subscribe(fn func(Screens)) Token
	Unsubscribe(Token)
}

// Controller re-runs Layout whenever the observed breakpoints change.
// It holds at most one subscription at a time. A Controller is driven from a
// single goroutine; notifications are expected to arrive serially.
type Controller struct {
	observer Observer
	token    Token
	active   bool

	props   Props
	screens Screens
	grid    Grid

	warn     Warnf
	onLayout func(Grid)
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithWarnf routes layout diagnostics somewhere other than the standard logger.
func WithWarnf(w Warnf) ControllerOption {
	return func(c *Controller) { c.warn = w }
}

// WithOnLayout registers a hook called with every new grid.
func WithOnLayout(fn func(Grid)) ControllerOption {
	return func(c *Controller) { c.onLayout = fn }
}

// NewController returns an inactive controller bound to obs.
func NewController(obs Observer, props Props, opts ...ControllerOption) *Controller {
	c := &Controller{
		observer: obs,
		props:    props,
		screens:  Screens{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.relayout()
	return c
}

// Activate subscribes to the observer. Calling it while active does nothing.
func (c *Controller) Activate() {
	if c.active || c.observer == nil {
		return
	}
	c.active = true
	c.token = c.observer.Subscribe(c.handleScreens)
}

// Deactivate drops the subscription. It is safe to call before Activate or
// more than once.
func (c *Controller) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	c.observer.Unsubscribe(c.token)
	c.token = 0
}

// Active reports whether the controller holds a subscription.
func (c *Controller) Active() bool { return c.active }

// SetProps replaces the layout inputs and re-runs the layout.
func (c *Controller) SetProps(props Props) {
	c.props = props
	c.relayout()
}

// Props returns the current layout inputs.
func (c *Controller) Props() Props { return c.props }

// Screens returns a copy of the last observed snapshot.
func (c *Controller) Screens() Screens { return c.screens.Clone() }

// Grid returns the result of the most recent layout pass.
func (c *Controller) Grid() Grid { return c.grid }

func (c *Controller) handleScreens(s Screens) {
	for _, bp := range Breakpoints {
		c.screens[bp] = s[bp]
	}
	c.relayout()
}

func (c *Controller) relayout() {
	c.grid = Layout(c.props, c.screens, c.warn)
	if c.onLayout != nil {
		c.onLayout(c.grid)
	}
}
