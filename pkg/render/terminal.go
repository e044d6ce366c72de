package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row shows two framebuffer rows.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// ▀ (upper half block) with fg=top color and bg=bottom color
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= fb.Height {
			break
		}
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(x, topY)),
					Bg: rgbaToColor(fb.GetPixel(x, botY)),
				},
			})
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalPresenter shows frames on a terminal.
type TerminalPresenter struct {
	term   *uv.Terminal
	width  int // Columns
	height int // Rows
}

// NewTerminalPresenter creates a presenter for a terminal of the given size
// in cells.
func NewTerminalPresenter(term *uv.Terminal, width, height int) *TerminalPresenter {
	return &TerminalPresenter{term: term, width: width, height: height}
}

// FramebufferSize returns the pixel size that fills the terminal.
func (p *TerminalPresenter) FramebufferSize() (width, height int) {
	return p.width, p.height * 2
}

// Viewport returns FramebufferSize as a Viewport.
func (p *TerminalPresenter) Viewport() Viewport {
	w, h := p.FramebufferSize()
	return Viewport{Width: w, Height: h}
}

// Resize records a new terminal size and resizes the terminal buffers.
func (p *TerminalPresenter) Resize(width, height int) error {
	p.width, p.height = width, height
	p.term.Erase()
	return p.term.Resize(width, height)
}

// Present draws fb and flushes it to the terminal.
func (p *TerminalPresenter) Present(fb *Framebuffer) error {
	p.term.Draw(fb)
	return p.term.Display()
}
