package render

// Renderer draws one layer of a frame
type Renderer interface {
	Render(ctx Context, c *Canvas)
}

// VisibilityToggle is optionally implemented to skip a layer per frame
type VisibilityToggle interface {
	IsVisible(ctx Context) bool
}
