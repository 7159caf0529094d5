package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// RegionFull selects the whole image.
const RegionFull = "full"

var regionNames = []string{
	RegionFull,
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half",
	"center",
}

// Regions lists the accepted region names.
func Regions() []string {
	out := make([]string, len(regionNames))
	copy(out, regionNames)
	return out
}

// ValidRegion reports whether name is a known region. The empty string is
// accepted as the full image.
func ValidRegion(name string) bool {
	if name == "" {
		return true
	}
	for _, r := range regionNames {
		if r == name {
			return true
		}
	}
	return false
}

// RegionRect returns the rectangle covered by the named region of bounds.
func RegionRect(bounds image.Rectangle, name string) (image.Rectangle, error) {
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := w/2, h/2

	var x1, y1, x2, y2 int
	switch name {
	case "", RegionFull:
		return bounds, nil
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		// Center 50% of the image
		qW, qH := w/4, h/4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return image.Rectangle{}, fmt.Errorf("unknown region: %s", name)
	}

	return image.Rect(x1, y1, x2, y2).Add(bounds.Min), nil
}

// SubImage returns the named region of img. The full image is returned
// unchanged; any other region is copied out.
func SubImage(img image.Image, name string) (image.Image, error) {
	if name == "" || name == RegionFull {
		return img, nil
	}

	rect, err := RegionRect(img.Bounds(), name)
	if err != nil {
		return nil, err
	}
	if rect.Empty() {
		return nil, fmt.Errorf("region %s of %dx%d image: %w", name, img.Bounds().Dx(), img.Bounds().Dy(), ErrEmptyImage)
	}
	return imaging.Crop(img, rect), nil
}
