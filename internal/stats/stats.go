package stats

import (
	"time"

	"github.com/tradervijeth/Wiki-Forge/internal/domain"
)

// Summarize computes aggregate statistics over one build pass. An empty
// table yields all-zero counts and a [null,null] date range.
func Summarize(articles []domain.Article) domain.StatisticsSummary {
	if len(articles) == 0 {
		return domain.StatisticsSummary{}
	}

	var textLen, summaryLen, references int
	categories := make(map[string]struct{})
	minDate, maxDate := articles[0].ProcessedAt, articles[0].ProcessedAt

	for _, a := range articles {
		textLen += len([]rune(a.CleanText))
		summaryLen += len([]rune(a.CleanSummary))
		references += a.ReferenceCount
		for _, c := range a.Categories {
			categories[c] = struct{}{}
		}
		if a.ProcessedAt.Before(minDate) {
			minDate = a.ProcessedAt
		}
		if a.ProcessedAt.After(maxDate) {
			maxDate = a.ProcessedAt
		}
	}

	n := len(articles)
	minStr := minDate.Format(time.RFC3339Nano)
	maxStr := maxDate.Format(time.RFC3339Nano)

	return domain.StatisticsSummary{
		TotalArticles:       n,
		AvgTextLength:       textLen / n,
		AvgSummaryLength:    summaryLen / n,
		TotalReferences:     references,
		UniqueCategories:    len(categories),
		ProcessingDateRange: [2]*string{&minStr, &maxStr},
	}
}
