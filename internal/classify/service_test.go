package classify

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/terrain-mcp/internal/fuzzy"
	"github.com/ironsheep/terrain-mcp/internal/imaging"
	"github.com/ironsheep/terrain-mcp/internal/terrain"
)

func uniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func newService(opts Options) *Service {
	return NewService(imaging.NewImageCache(), opts)
}

func TestClassifyImage_White(t *testing.T) {
	s := newService(Options{})

	report, err := s.ClassifyImage(uniformImage(10, 10, color.RGBA{255, 255, 255, 255}), "")
	require.NoError(t, err)

	assert.Equal(t, imaging.RegionFull, report.Region)
	assert.Equal(t, terrain.Means{R: 255, G: 255, B: 255}, report.MeanColor.Means)
	assert.Equal(t, terrain.Tundra, report.Fuzzy.Class)
	assert.Equal(t, 1.0, report.Fuzzy.Scores[terrain.Tundra])
	assert.InDelta(t, 1.0, report.NaiveBayes.Scores.Sum(), 1e-9)
}

func TestClassifyImage_SameMeansForBoth(t *testing.T) {
	s := newService(Options{})
	img := uniformImage(6, 6, color.RGBA{200, 200, 50, 255})

	report, err := s.ClassifyImage(img, "")
	require.NoError(t, err)

	nb, err := s.Bayes().Classify(report.MeanColor.Means)
	require.NoError(t, err)
	fz := fuzzy.Classify(200, 200, 50)

	assert.Equal(t, nb, report.NaiveBayes)
	assert.Equal(t, fz, report.Fuzzy)
}

func TestClassifyImage_Region(t *testing.T) {
	s := newService(Options{})

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if x < 10 && y < 10 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}

	report, err := s.ClassifyImage(img, "top-left")
	require.NoError(t, err)
	assert.Equal(t, "top-left", report.Region)
	assert.Equal(t, terrain.Desert, report.Fuzzy.Class)
	assert.Equal(t, terrain.Desert, report.NaiveBayes.Class)

	report, err = s.ClassifyImage(img, "bottom-half")
	require.NoError(t, err)
	assert.Equal(t, terrain.Ocean, report.Fuzzy.Class)
	assert.Equal(t, terrain.Ocean, report.NaiveBayes.Class)

	_, err = s.ClassifyImage(img, "somewhere")
	assert.Error(t, err)
}

func TestClassifyFile(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "ocean.png", uniformImage(16, 16, color.RGBA{0, 0, 255, 255}))

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetLevel(logrus.DebugLevel)

	s := newService(Options{Logger: logger})
	report, err := s.ClassifyFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, path, report.Path)
	assert.Equal(t, terrain.Ocean, report.Fuzzy.Class)
	assert.Equal(t, 1.0, report.Fuzzy.Scores[terrain.Ocean])
	assert.Equal(t, terrain.Ocean, report.NaiveBayes.Class)
	assert.Equal(t, "#0000ff", report.MeanColor.Hex)
	assert.Equal(t, 1, s.Cache().Len())
	assert.Contains(t, logs.String(), "Classified image")
}

func TestClassifyFile_Missing(t *testing.T) {
	s := newService(Options{})
	_, err := s.ClassifyFile(filepath.Join(t.TempDir(), "absent.png"), "")
	assert.Error(t, err)
}

func TestClassifyFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writePNG(t, dir, "white.png", uniformImage(8, 8, color.RGBA{255, 255, 255, 255})),
		filepath.Join(dir, "missing.png"),
		writePNG(t, dir, "sand.png", uniformImage(8, 8, color.RGBA{220, 30, 20, 255})),
		writePNG(t, dir, "sea.png", uniformImage(8, 8, color.RGBA{0, 0, 255, 255})),
	}

	s := newService(Options{Workers: 2})
	items, err := s.ClassifyFiles(context.Background(), paths, "")
	require.NoError(t, err)
	require.Len(t, items, len(paths))

	for i, item := range items {
		assert.Equal(t, paths[i], item.Path)
	}

	assert.Equal(t, terrain.Tundra, items[0].Report.Fuzzy.Class)

	assert.Nil(t, items[1].Report)
	assert.Error(t, items[1].Err)
	assert.NotEmpty(t, items[1].Error)

	assert.Equal(t, terrain.Desert, items[2].Report.Fuzzy.Class)
	assert.Equal(t, terrain.Ocean, items[3].Report.Fuzzy.Class)
}

func TestClassifyFiles_Empty(t *testing.T) {
	items, err := newService(Options{}).ClassifyFiles(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClassifyFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "white.png", uniformImage(4, 4, color.RGBA{255, 255, 255, 255}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(Options{}).ClassifyFiles(ctx, []string{path, path}, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewService_Logic(t *testing.T) {
	assert.Equal(t, "goguen", newService(Options{}).Fuzzy().Logic().Name)
	assert.Equal(t, "godel", newService(Options{Logic: fuzzy.Godel}).Fuzzy().Logic().Name)
}

func TestService_Means(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "grey.png", uniformImage(4, 4, color.RGBA{100, 100, 100, 255}))

	mc, err := newService(Options{}).Means(path, "center")
	require.NoError(t, err)
	assert.Equal(t, terrain.Means{R: 100, G: 100, B: 100}, mc.Means)
	assert.Equal(t, 4, mc.Pixels)
}
