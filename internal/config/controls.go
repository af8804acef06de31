package config

// Controls are the user-configurable key bindings of the live view.
type Controls struct {
	// Vim keys (hjkl) move the selection unless disabled.
	DisableVim bool `toml:"disable_vim_bindings"`

	Border string `toml:"border"`
	Size   string `toml:"size"`
	Reload string `toml:"reload"`
	Open   string `toml:"open"`

	// Computed by InitControls.
	NavUp    []string `toml:"-"`
	NavDown  []string `toml:"-"`
	NavLeft  []string `toml:"-"`
	NavRight []string `toml:"-"`
}

// DefaultControls returns the stock bindings.
func DefaultControls() Controls {
	var c Controls
	c.InitControls()
	return c
}

// InitControls fills unset action keys and builds the navigation sets. Call
// it after decoding.
func (c *Controls) InitControls() {
	if c.Border == "" {
		c.Border = "b"
	}
	if c.Size == "" {
		c.Size = "s"
	}
	if c.Reload == "" {
		c.Reload = "r"
	}
	if c.Open == "" {
		c.Open = "o"
	}

	// Arrow keys always work.
	c.NavUp = []string{"up"}
	c.NavDown = []string{"down"}
	c.NavLeft = []string{"left"}
	c.NavRight = []string{"right"}

	if !c.DisableVim {
		c.NavUp = append(c.NavUp, "k")
		c.NavDown = append(c.NavDown, "j")
		c.NavLeft = append(c.NavLeft, "h")
		c.NavRight = append(c.NavRight, "l")
	}
}
