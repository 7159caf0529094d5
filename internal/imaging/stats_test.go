package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestChannelMeans_Uniform(t *testing.T) {
	m, err := ChannelMeans(uniformImage(20, 10, color.RGBA{200, 100, 50, 255}))
	require.NoError(t, err)

	assert.Equal(t, 200.0, m.R)
	assert.Equal(t, 100.0, m.G)
	assert.Equal(t, 50.0, m.B)
}

func TestChannelMeans_TwoColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.Set(x, y, color.RGBA{200, 100, 50, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 50, 250, 255})
			}
		}
	}

	m, err := ChannelMeans(img)
	require.NoError(t, err)

	assert.Equal(t, 100.0, m.R)
	assert.Equal(t, 75.0, m.G)
	assert.Equal(t, 150.0, m.B)
}

func TestChannelMeans_Fractional(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(2, 0, color.RGBA{1, 2, 0, 255})

	m, err := ChannelMeans(img)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3.0, m.R, 1e-15)
	assert.InDelta(t, 2.0/3.0, m.G, 1e-15)
	assert.Equal(t, 0.0, m.B)
}

func TestChannelMeans_Pattern(t *testing.T) {
	m, err := ChannelMeans(createPatternImage(100, 100))
	require.NoError(t, err)

	// Each channel is 255 in two of the four quadrants.
	assert.Equal(t, 127.5, m.R)
	assert.Equal(t, 127.5, m.G)
	assert.Equal(t, 127.5, m.B)
}

func TestChannelMeans_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 14, 14))
	for y := 10; y < 14; y++ {
		for x := 10; x < 14; x++ {
			img.Set(x, y, color.RGBA{30, 60, 90, 255})
		}
	}

	m, err := ChannelMeans(img)
	require.NoError(t, err)
	assert.Equal(t, 30.0, m.R)
	assert.Equal(t, 60.0, m.G)
	assert.Equal(t, 90.0, m.B)
}

func TestChannelMeans_Empty(t *testing.T) {
	_, err := ChannelMeans(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestMeanColorOf(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
		wantHSL HSLColor
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#ff0000", HSLColor{0, 100, 50}},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00ff00", HSLColor{120, 100, 50}},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000ff", HSLColor{240, 100, 50}},
		{"white", color.RGBA{255, 255, 255, 255}, "#ffffff", HSLColor{0, 0, 100}},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", HSLColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc, err := MeanColorOf(uniformImage(8, 8, tt.color))
			require.NoError(t, err)

			assert.Equal(t, tt.wantHex, mc.Hex)
			assert.Equal(t, tt.wantHSL, mc.HSL)
			assert.Equal(t, 64, mc.Pixels)
			assert.Equal(t, float64(tt.color.R), mc.Means.R)
		})
	}
}

func TestMeanColorOf_Mixed(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{200, 100, 50, 255})
	img.Set(1, 0, color.RGBA{0, 50, 250, 255})

	mc, err := MeanColorOf(img)
	require.NoError(t, err)
	assert.Equal(t, "#644b96", mc.Hex)
}

func TestMeanColorOf_Empty(t *testing.T) {
	_, err := MeanColorOf(image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrEmptyImage)
}
