package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render takes raw content and its file extension and returns display text
	Render(content string, ext string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
