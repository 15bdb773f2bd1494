// Package display renders ranging results on a small monochrome panel.
//
// Every message clears the whole buffer, draws its text centered on the
// panel and flushes; there are no partial updates.
package display

import (
	"image/color"
	"strings"

	"metter/core"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

// LostText is shown when no echo came back in range
const LostText = "I think the\nwave is lost"

// Panel is a buffered display: SetPixel draws off-screen, Display flushes.
// *ssd1306.Device satisfies it.
type Panel interface {
	drivers.Displayer

	// ClearBuffer blanks the off-screen buffer without flushing
	ClearBuffer()
}

// Style is a font and ink color
type Style struct {
	Font  tinyfont.Fonter
	Color color.RGBA
}

// Styles holds the two text styles used on screen
type Styles struct {
	Heading Style // readings and the boot title
	Body    Style // the lost-echo message
}

var white = color.RGBA{255, 255, 255, 255}

// DefaultStyles returns the styles for a 128x64 panel
func DefaultStyles() Styles {
	return Styles{
		Heading: Style{Font: &freemono.Bold12pt7b, Color: white},
		Body:    Style{Font: &proggy.TinySZ8pt7b, Color: white},
	}
}

// Render picks the text and style for msg
func Render(msg core.Message, styles Styles) (string, Style) {
	if msg.Kind == core.KindOutOfRange {
		return LostText, styles.Body
	}
	return core.FormatCM(msg.CM), styles.Heading
}

// Presenter draws messages on a panel
type Presenter struct {
	panel  Panel
	styles Styles
}

// NewPresenter creates a presenter for panel
func NewPresenter(panel Panel, styles Styles) *Presenter {
	return &Presenter{panel: panel, styles: styles}
}

// Init shows the boot title
func (p *Presenter) Init(title string) error {
	p.panel.ClearBuffer()
	p.drawCentered(title, p.styles.Heading)
	return p.panel.Display()
}

// Show replaces the screen contents with msg and flushes.
// It blocks until the flush completes and returns the flush error.
func (p *Presenter) Show(msg core.Message) error {
	text, style := Render(msg, p.styles)
	p.panel.ClearBuffer()
	p.drawCentered(text, style)
	return p.panel.Display()
}

// drawCentered writes text with each line centered horizontally and the
// block centered vertically on the panel midpoint
func (p *Presenter) drawCentered(text string, style Style) {
	w, h := p.panel.Size()
	cx, cy := w/2, h/2

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	lineHeight := int16(style.Font.GetYAdvance())
	top := cy - lineHeight*int16(len(lines))/2

	for i, line := range lines {
		_, outbox := tinyfont.LineWidth(style.Font, line)
		x := cx - int16(outbox)/2
		// baseline sits a quarter line above the bottom of the line box
		y := top + lineHeight*int16(i+1) - lineHeight/4
		tinyfont.WriteLine(p.panel, style.Font, x, y, line, style.Color)
	}
}
