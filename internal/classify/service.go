// Package classify runs the terrain classifiers against images.
//
// A Service reduces an image (or a named region of it) to its channel means
// once and feeds the same means to both the naive Bayes and the fuzzy
// classifier, producing a Report. Batches of files are classified
// concurrently with a bounded number of workers.
package classify

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/terrain-mcp/internal/bayes"
	"github.com/ironsheep/terrain-mcp/internal/fuzzy"
	"github.com/ironsheep/terrain-mcp/internal/imaging"
	"github.com/ironsheep/terrain-mcp/internal/terrain"
)

// Report holds both classifications of one image.
type Report struct {
	Path       string             `json:"path,omitempty"`
	Region     string             `json:"region"`
	MeanColor  *imaging.MeanColor `json:"mean_color"`
	NaiveBayes terrain.Result     `json:"naive_bayes"`
	Fuzzy      terrain.Result     `json:"fuzzy"`
}

// Options configures a Service.
type Options struct {
	// Workers bounds concurrent images in ClassifyFiles. Zero means GOMAXPROCS.
	Workers int
	// Logic is the fuzzy logic family. The zero value means Goguen.
	Logic fuzzy.Logic
	// Logger receives classification events. Nil discards them.
	Logger *logrus.Logger
}

// Service classifies images with both classifiers.
type Service struct {
	cache   *imaging.ImageCache
	fuzzy   *fuzzy.Classifier
	bayes   *bayes.Classifier
	workers int
	log     *logrus.Logger
}

// NewService returns a Service loading images through cache.
func NewService(cache *imaging.ImageCache, opts Options) *Service {
	logic := opts.Logic
	if logic.T == nil || logic.S == nil {
		logic = fuzzy.Goguen
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	return &Service{
		cache:   cache,
		fuzzy:   fuzzy.New(logic),
		bayes:   bayes.Default(),
		workers: workers,
		log:     logger,
	}
}

// Cache returns the image cache the service loads through.
func (s *Service) Cache() *imaging.ImageCache {
	return s.cache
}

// Fuzzy returns the service's fuzzy classifier.
func (s *Service) Fuzzy() *fuzzy.Classifier {
	return s.fuzzy
}

// Bayes returns the service's naive Bayes classifier.
func (s *Service) Bayes() *bayes.Classifier {
	return s.bayes
}

// Means loads path and returns the mean color of the named region.
func (s *Service) Means(path, region string) (*imaging.MeanColor, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return meanColor(img, region)
}

// ClassifyImage classifies the named region of img.
func (s *Service) ClassifyImage(img image.Image, region string) (*Report, error) {
	mc, err := meanColor(img, region)
	if err != nil {
		return nil, err
	}

	nb, err := s.bayes.Classify(mc.Means)
	if err != nil {
		return nil, fmt.Errorf("naive bayes: %w", err)
	}
	fz, err := s.fuzzy.Classify(mc.Means)
	if err != nil {
		return nil, fmt.Errorf("fuzzy: %w", err)
	}

	if region == "" {
		region = imaging.RegionFull
	}
	return &Report{
		Region:     region,
		MeanColor:  mc,
		NaiveBayes: nb,
		Fuzzy:      fz,
	}, nil
}

// ClassifyFile loads path through the cache and classifies the named region.
func (s *Service) ClassifyFile(path, region string) (*Report, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}

	report, err := s.ClassifyImage(img, region)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	report.Path = path

	s.log.WithFields(logrus.Fields{
		"path":        path,
		"region":      report.Region,
		"mean":        report.MeanColor.Hex,
		"naive_bayes": report.NaiveBayes.Class,
		"fuzzy":       report.Fuzzy.Class,
	}).Debug("Classified image")

	return report, nil
}

// Item is the outcome for one file of a batch. Exactly one of Report and
// Err is set.
type Item struct {
	Path   string  `json:"path"`
	Report *Report `json:"report,omitempty"`
	Err    error   `json:"-"`
	Error  string  `json:"error,omitempty"`
}

// ClassifyFiles classifies every path, at most Workers at a time. Items are
// returned in input order. A failing file is recorded on its Item and does
// not stop the batch; only cancellation of ctx does.
func (s *Service) ClassifyFiles(ctx context.Context, paths []string, region string) ([]Item, error) {
	items := make([]Item, len(paths))
	if len(paths) == 0 {
		return items, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(s.workers, len(paths)))

	for i, path := range paths {
		i, path := i, path // per-iteration copy (go1.21 loop semantics)
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// Each goroutine owns items[i].
			items[i].Path = path
			report, err := s.ClassifyFile(path, region)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"path":  path,
					"error": err,
				}).Warn("Failed to classify image")
				items[i].Err = err
				items[i].Error = err.Error()
				return nil
			}
			items[i].Report = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func meanColor(img image.Image, region string) (*imaging.MeanColor, error) {
	sub, err := imaging.SubImage(img, region)
	if err != nil {
		return nil, err
	}
	return imaging.MeanColorOf(sub)
}
