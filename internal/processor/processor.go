package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradervijeth/Wiki-Forge/internal/domain"
	"github.com/tradervijeth/Wiki-Forge/internal/monitoring"
	"github.com/tradervijeth/Wiki-Forge/internal/normalizer"
	"github.com/tradervijeth/Wiki-Forge/internal/wiki"
)

// Fetcher retrieves one article by title. Implementations return
// wiki.ErrPageNotFound for titles that do not resolve to an existing page.
type Fetcher interface {
	Fetch(ctx context.Context, title string) (*domain.Article, error)
}

// Store persists one built dataset.
type Store interface {
	SaveDataset(basePath string, articles []domain.Article, meta domain.DatasetMeta) error
}

// Processor builds datasets: it fetches each requested title in order,
// normalizes the text, and persists the accumulated table.
type Processor struct {
	fetcher Fetcher
	cleaner *normalizer.Normalizer
	store   Store
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

func New(f Fetcher, n *normalizer.Normalizer, s Store, m *monitoring.Metrics, l *zap.Logger) *Processor {
	return &Processor{
		fetcher: f,
		cleaner: n,
		store:   s,
		metrics: m,
		logger:  l,
	}
}

// Build fetches the given titles sequentially, in input order. Titles that
// are missing or fail to fetch are skipped without error; the caller only
// observes how many records made it into the table. When at least one record
// was produced the table is persisted at outputBase; an empty table writes
// nothing.
func (p *Processor) Build(ctx context.Context, titles []string, outputBase string) ([]domain.Article, error) {
	articles := make([]domain.Article, 0, len(titles))

	for _, title := range titles {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("processing aborted: %w", ctx.Err())
		default:
		}

		p.logger.Info("processing article", zap.String("title", title))

		article, err := p.fetcher.Fetch(ctx, title)
		if err != nil {
			if errors.Is(err, wiki.ErrPageNotFound) {
				p.logger.Warn("page does not exist", zap.String("title", title))
			} else {
				p.logger.Error("failed to fetch article", zap.String("title", title), zap.Error(err))
				p.metrics.IncErrorsTotal("fetch_failed")
			}
			continue
		}

		article.CleanText = p.cleaner.Clean(article.RawText)
		article.CleanSummary = p.cleaner.Clean(article.RawSummary)
		articles = append(articles, *article)
		p.metrics.IncArticlesProcessedTotal()
	}

	if len(articles) == 0 {
		p.logger.Warn("no articles were successfully processed")
		return articles, nil
	}

	meta := domain.DatasetMeta{
		RunID:          uuid.NewString(),
		RequestedCount: len(titles),
		ProcessedCount: len(articles),
		CSVPath:        outputBase + ".csv",
		JSONPath:       outputBase + ".json",
		CreatedAt:      time.Now(),
	}

	if err := p.store.SaveDataset(outputBase, articles, meta); err != nil {
		p.metrics.IncErrorsTotal("save_failed")
		return nil, fmt.Errorf("saving dataset: %w", err)
	}

	p.logger.Info("processed articles successfully",
		zap.Int("count", len(articles)),
		zap.String("run_id", meta.RunID),
	)
	return articles, nil
}
