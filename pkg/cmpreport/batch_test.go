package cmpreport

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBatch(t *testing.T) {
	dir := t.TempDir()
	var jobs []Job
	for i := 0; i < 6; i++ {
		meta := floodMetadata()
		meta.Keyword = fmt.Sprintf("keyword-%d", i)
		jobs = append(jobs, Job{Metadata: meta, Destination: filepath.Join(dir, fmt.Sprintf("r%d.xlsx", i))})
	}

	opts := DefaultOptions()
	opts.Concurrency = 2
	require.NoError(t, RenderBatch(context.Background(), jobs, opts))

	for i, job := range jobs {
		wb, err := xlsx.Inspect(job.Destination)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("keyword-%d", i), wb.Sheets[0].Row(2).C["2"])
	}
}

func TestRenderBatchDuplicateDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "same.xlsx")
	jobs := []Job{
		{Metadata: floodMetadata(), Destination: dest},
		{Metadata: floodMetadata(), Destination: dest},
	}
	assert.ErrorIs(t, RenderBatch(context.Background(), jobs, DefaultOptions()), ErrDuplicateDestination)
}

func TestRenderBatchFailure(t *testing.T) {
	dir := t.TempDir()
	jobs := []Job{
		{Metadata: floodMetadata(), Destination: filepath.Join(dir, "ok.xlsx")},
		{Metadata: nil, Destination: filepath.Join(dir, "nil.xlsx")},
	}
	assert.ErrorIs(t, RenderBatch(context.Background(), jobs, DefaultOptions()), ErrNilMetadata)
}

func TestRenderBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	jobs := []Job{{Metadata: floodMetadata(), Destination: filepath.Join(t.TempDir(), "c.xlsx")}}
	assert.ErrorIs(t, RenderBatch(ctx, jobs, DefaultOptions()), context.Canceled)
}
