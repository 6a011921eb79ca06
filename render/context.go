package render

import "time"

// Context provides frame state for renderers, passed by value
type Context struct {
	Now    time.Time
	Width  int
	Height int
	Layout Layout
	Scene  Scene
}

// NewContext derives the layout for the given terminal size
func NewContext(now time.Time, width, height int, scene Scene) Context {
	return Context{
		Now:    now,
		Width:  width,
		Height: height,
		Layout: ComputeLayout(width, height),
		Scene:  scene,
	}
}

// TooSmall reports whether the terminal is below the minimum usable size
func (c Context) TooSmall() bool {
	return !c.Layout.Usable
}
