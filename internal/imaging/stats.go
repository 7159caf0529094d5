package imaging

import (
	"errors"
	"image"
	"math"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/terrain-mcp/internal/terrain"
)

// ErrEmptyImage is returned when an image or region has no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// ChannelMeans returns the arithmetic mean of the red, green and blue
// channels over every pixel of img, on the 0-255 scale.
func ChannelMeans(img image.Image) (terrain.Means, error) {
	means, _, err := channelMeans(img)
	return means, err
}

func channelMeans(img image.Image) (terrain.Means, int, error) {
	b := img.Bounds()
	if b.Empty() {
		return terrain.Means{}, 0, ErrEmptyImage
	}

	hist := histogram.NewRGBAHistogram(img)
	pixels := b.Dx() * b.Dy()

	mean := func(h histogram.Histogram) float64 {
		var sum int64
		for level, n := range h.Bins {
			sum += int64(level) * int64(n)
		}
		return float64(sum) / float64(pixels)
	}

	return terrain.Means{
		R: mean(hist.R),
		G: mean(hist.G),
		B: mean(hist.B),
	}, pixels, nil
}

// HSLColor is a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// MeanColor describes the average color of an image or region.
type MeanColor struct {
	Means  terrain.Means `json:"means"`
	Pixels int           `json:"pixels"`
	Hex    string        `json:"hex"`
	HSL    HSLColor      `json:"hsl"`
}

// MeanColorOf computes the channel means of img and renders the resulting
// average color as hex and HSL.
func MeanColorOf(img image.Image) (*MeanColor, error) {
	means, pixels, err := channelMeans(img)
	if err != nil {
		return nil, err
	}

	c := colorful.Color{R: means.R / 255, G: means.G / 255, B: means.B / 255}.Clamped()
	h, s, l := c.Hsl()

	return &MeanColor{
		Means:  means,
		Pixels: pixels,
		Hex:    c.Hex(),
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}, nil
}
