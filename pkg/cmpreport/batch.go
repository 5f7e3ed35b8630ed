package cmpreport

import (
	"context"
	"fmt"
	"time"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"golang.org/x/sync/errgroup"
)

// Job is one record and the file its report is written to.
type Job struct {
	Metadata    *models.ReportMetadata
	Destination string
}

// RenderBatch renders jobs concurrently, at most opts.Concurrency at a time.
// Every job must have its own destination. The first failure cancels jobs
// that have not started yet and is returned.
func RenderBatch(ctx context.Context, jobs []Job, opts Options) error {
	seen := make(map[string]bool, len(jobs))
	for _, job := range jobs {
		dest := job.Destination
		if dest == "" {
			dest = DefaultFileName
		}
		if seen[dest] {
			return fmt.Errorf("%w: %s", ErrDuplicateDestination, dest)
		}
		seen[dest] = true
	}

	logger := opts.logger()
	logger.Info("starting batch", "jobs", len(jobs), "concurrency", opts.concurrency())
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for _, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return Render(job.Metadata, job.Destination, opts)
		})
	}
	err := g.Wait()

	logger.Info("batch complete", "jobs", len(jobs), "elapsed", time.Since(start), "failed", err != nil)
	return err
}
