// Package screen turns terminal widths into breakpoint snapshots and
// publishes them to layout controllers.
package screen

import (
	"os"
	"strconv"
	"sync"

	"github.com/lucky7xz/labelgrid/internal/core"
	"golang.org/x/term"
)

// DefaultWidth is assumed when the terminal cannot be measured.
const DefaultWidth = 80

// Thresholds holds the minimum terminal width, in cells, at which each
// breakpoint becomes active. XS has no minimum: it is active below SM.
type Thresholds map[core.Breakpoint]int

// DefaultThresholds returns the stock terminal breakpoints.
func DefaultThresholds() Thresholds {
	return Thresholds{
		core.SM:  60,
		core.MD:  80,
		core.LG:  100,
		core.XL:  120,
		core.XXL: 160,
	}
}

// Screens marks every breakpoint whose width condition holds. Wider
// terminals satisfy several breakpoints at once; resolution picks the widest.
func (t Thresholds) Screens(width int) core.Screens {
	s := make(core.Screens, len(core.Breakpoints))
	for _, bp := range core.Breakpoints {
		if bp == core.XS {
			continue
		}
		minWidth, ok := t[bp]
		s[bp] = ok && width >= minWidth
	}
	sm, ok := t[core.SM]
	s[core.XS] = !ok || width < sm
	return s
}

// Observer implements core.Observer on top of width reports.
type Observer struct {
	mu         sync.Mutex
	thresholds Thresholds
	subs       map[core.Token]func(core.Screens)
	next       core.Token
	width      int
	screens    core.Screens
}

// NewObserver returns an observer that has not seen any width yet.
func NewObserver(t Thresholds) *Observer {
	if t == nil {
		t = DefaultThresholds()
	}
	return &Observer{
		thresholds: t,
		subs:       map[core.Token]func(core.Screens){},
	}
}

// Subscribe registers fn and, once a width is known, immediately hands it
// the current snapshot.
func (o *Observer) Subscribe(fn func(core.Screens)) core.Token {
	o.mu.Lock()
	o.next++
	tok := o.next
	o.subs[tok] = fn
	current := o.screens.Clone()
	o.mu.Unlock()

	if current != nil {
		fn(current)
	}
	return tok
}

// Unsubscribe removes a subscription. Unknown tokens are ignored.
func (o *Observer) Unsubscribe(tok core.Token) {
	o.mu.Lock()
	delete(o.subs, tok)
	o.mu.Unlock()
}

// Subscribers returns the number of live subscriptions.
func (o *Observer) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

// Dispatch records a new terminal width and notifies subscribers when the
// set of active breakpoints changed. It reports whether it notified.
func (o *Observer) Dispatch(width int) bool {
	next := o.thresholds.Screens(width)

	o.mu.Lock()
	o.width = width
	if o.screens != nil && o.screens.Equal(next) {
		o.mu.Unlock()
		return false
	}
	o.screens = next
	fns := make([]func(core.Screens), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(next.Clone())
	}
	return true
}

// Width returns the last dispatched width, or 0.
func (o *Observer) Width() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.width
}

// Current returns the last snapshot, or nil before the first Dispatch.
func (o *Observer) Current() core.Screens {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.screens.Clone()
}

// TerminalWidth measures the terminal behind fd. It falls back to $COLUMNS
// and then DefaultWidth when fd is not a terminal.
func TerminalWidth(fd int) int {
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultWidth
}
