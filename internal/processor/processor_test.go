package processor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tradervijeth/Wiki-Forge/internal/domain"
	"github.com/tradervijeth/Wiki-Forge/internal/monitoring"
	"github.com/tradervijeth/Wiki-Forge/internal/normalizer"
	"github.com/tradervijeth/Wiki-Forge/internal/processor"
	"github.com/tradervijeth/Wiki-Forge/internal/storage"
	"github.com/tradervijeth/Wiki-Forge/internal/wiki"
)

// stubFetcher returns canned articles keyed by title; unknown titles get
// the not-found signal.
type stubFetcher struct {
	pages map[string]*domain.Article
	errs  map[string]error
}

func (f *stubFetcher) Fetch(_ context.Context, title string) (*domain.Article, error) {
	if err, ok := f.errs[title]; ok {
		return nil, err
	}
	if page, ok := f.pages[title]; ok {
		copied := *page
		return &copied, nil
	}
	return nil, wiki.ErrPageNotFound
}

func newProcessor(f processor.Fetcher) *processor.Processor {
	return processor.New(
		f,
		normalizer.New(),
		storage.NewFileStore(),
		monitoring.NewMetrics(prometheus.NewRegistry()),
		zap.NewNop(),
	)
}

func page(title string) *domain.Article {
	return &domain.Article{
		Title:       title,
		RawText:     title + " body [1]",
		RawSummary:  title + " lead",
		URL:         "https://en.wikipedia.org/wiki/" + title,
		ProcessedAt: time.Now(),
	}
}

func TestBuildSkipsAbsentTitles(t *testing.T) {
	t.Parallel()

	p := newProcessor(&stubFetcher{pages: map[string]*domain.Article{
		"RealPage": page("RealPage"),
	}})

	base := filepath.Join(t.TempDir(), "run")
	articles, err := p.Build(context.Background(), []string{"RealPage", "DoesNotExist123"}, base)
	require.NoError(t, err)

	require.Len(t, articles, 1)
	assert.Equal(t, "RealPage", articles[0].Title)
}

func TestBuildPreservesInputOrder(t *testing.T) {
	t.Parallel()

	p := newProcessor(&stubFetcher{pages: map[string]*domain.Article{
		"First":  page("First"),
		"Second": page("Second"),
		"Third":  page("Third"),
	}})

	base := filepath.Join(t.TempDir(), "run")
	articles, err := p.Build(context.Background(), []string{"First", "Missing", "Second", "Third"}, base)
	require.NoError(t, err)

	require.Len(t, articles, 3)
	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, "Second", articles[1].Title)
	assert.Equal(t, "Third", articles[2].Title)
}

func TestBuildNormalizesText(t *testing.T) {
	t.Parallel()

	p := newProcessor(&stubFetcher{pages: map[string]*domain.Article{
		"RealPage": page("RealPage"),
	}})

	base := filepath.Join(t.TempDir(), "run")
	articles, err := p.Build(context.Background(), []string{"RealPage"}, base)
	require.NoError(t, err)

	require.Len(t, articles, 1)
	assert.Equal(t, "RealPage body", articles[0].CleanText)
	assert.Equal(t, "RealPage lead", articles[0].CleanSummary)
}

func TestBuildWritesNothingWhenTableIsEmpty(t *testing.T) {
	t.Parallel()

	p := newProcessor(&stubFetcher{})

	base := filepath.Join(t.TempDir(), "run")
	articles, err := p.Build(context.Background(), []string{"Missing1", "Missing2"}, base)
	require.NoError(t, err)
	assert.Empty(t, articles)

	for _, ext := range []string{".csv", ".json", ".meta.json"} {
		_, statErr := os.Stat(base + ext)
		assert.True(t, os.IsNotExist(statErr), "expected %s to be absent", base+ext)
	}
}

func TestBuildToleratesEmptyTitleList(t *testing.T) {
	t.Parallel()

	p := newProcessor(&stubFetcher{})

	articles, err := p.Build(context.Background(), nil, filepath.Join(t.TempDir(), "run"))
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestBuildSwallowsFetchFaults(t *testing.T) {
	t.Parallel()

	p := newProcessor(&stubFetcher{
		pages: map[string]*domain.Article{"Good": page("Good")},
		errs:  map[string]error{"Flaky": assert.AnError},
	})

	base := filepath.Join(t.TempDir(), "run")
	articles, err := p.Build(context.Background(), []string{"Flaky", "Good"}, base)
	require.NoError(t, err)

	require.Len(t, articles, 1)
	assert.Equal(t, "Good", articles[0].Title)
}

func TestBuildPersistsDataset(t *testing.T) {
	t.Parallel()

	p := newProcessor(&stubFetcher{pages: map[string]*domain.Article{
		"RealPage": page("RealPage"),
	}})

	base := filepath.Join(t.TempDir(), "datasets", "run")
	_, err := p.Build(context.Background(), []string{"RealPage"}, base)
	require.NoError(t, err)

	for _, ext := range []string{".csv", ".json", ".meta.json"} {
		_, statErr := os.Stat(base + ext)
		assert.NoError(t, statErr, "expected %s to exist", base+ext)
	}
}

func TestBuildAbortsOnCanceledContext(t *testing.T) {
	t.Parallel()

	p := newProcessor(&stubFetcher{pages: map[string]*domain.Article{
		"RealPage": page("RealPage"),
	}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Build(ctx, []string{"RealPage"}, filepath.Join(t.TempDir(), "run"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
