package intake

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/lukesour/school-positioning/internal/analysis"
)

// ReferenceSource is the slice of the analysis client the intake needs to
// warm up its pick lists.
type ReferenceSource interface {
	Stats(ctx context.Context) (*analysis.Stats, error)
	Universities(ctx context.Context) ([]string, error)
	Majors(ctx context.Context) ([]string, error)
}

// ReferenceData holds the pick-list data offered by the intake surface.
type ReferenceData struct {
	Universities []string
	Majors       []string
	Stats        *analysis.Stats
}

// LoadReferenceData fetches universities, majors and corpus stats
// concurrently. Warmup failure is expected to be non-fatal to intake; the
// caller decides whether to proceed with free-text entry.
func LoadReferenceData(ctx context.Context, src ReferenceSource, verbose bool) (*ReferenceData, error) {
	ref := &ReferenceData{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := src.Stats(ctx)
		if err != nil {
			return err
		}
		ref.Stats = stats
		return nil
	})
	g.Go(func() error {
		universities, err := src.Universities(ctx)
		if err != nil {
			return err
		}
		ref.Universities = universities
		return nil
	})
	g.Go(func() error {
		majors, err := src.Majors(ctx)
		if err != nil {
			return err
		}
		ref.Majors = majors
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if verbose {
		log.Printf("[INTAKE] Reference data loaded: %d universities, %d majors, %d cases",
			len(ref.Universities), len(ref.Majors), ref.Stats.TotalCases)
	}
	return ref, nil
}
