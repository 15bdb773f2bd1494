//go:build linux && !tinygo

package main

import (
	"image"
	"image/color"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// oledPanel keeps a 1-bit frame in the controller's page layout and sends
// the whole frame on Display
type oledPanel struct {
	dev   *ssd1306.Dev
	frame *image1bit.VerticalLSB
}

func newPanel(bus i2c.Bus) (*oledPanel, error) {
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return nil, err
	}
	return &oledPanel{
		dev:   dev,
		frame: image1bit.NewVerticalLSB(dev.Bounds()),
	}, nil
}

func (p *oledPanel) Size() (x, y int16) {
	b := p.frame.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel lights any non-black pixel
func (p *oledPanel) SetPixel(x, y int16, c color.RGBA) {
	pt := image.Point{X: int(x), Y: int(y)}
	if !pt.In(p.frame.Bounds()) {
		return
	}
	p.frame.SetBit(pt.X, pt.Y, image1bit.Bit(c.R|c.G|c.B != 0))
}

func (p *oledPanel) ClearBuffer() {
	clear(p.frame.Pix)
}

func (p *oledPanel) Display() error {
	return p.dev.Draw(p.dev.Bounds(), p.frame, image.Point{})
}

func (p *oledPanel) Halt() error {
	return p.dev.Halt()
}
