package domain

import "time"

// ProcessRequest is the payload for the API
type ProcessRequest struct {
	Titles []string `json:"titles"`
	Name   string   `json:"name,omitempty"` // Optional dataset name, used as the output base name
}

// Article holds one fetched and normalized encyclopedia article
type Article struct {
	Title          string    `json:"title"`
	RawText        string    `json:"raw_text"`
	RawSummary     string    `json:"raw_summary"`
	URL            string    `json:"url"`
	Categories     []string  `json:"categories"`
	ReferenceCount int       `json:"reference_count"`
	ProcessedAt    time.Time `json:"processed_at"`
	CleanText      string    `json:"clean_text"`
	CleanSummary   string    `json:"clean_summary"`
}

// StatisticsSummary is the aggregate view over one build pass
type StatisticsSummary struct {
	TotalArticles       int        `json:"total_articles"`
	AvgTextLength       int        `json:"avg_text_length"`
	AvgSummaryLength    int        `json:"avg_summary_length"`
	TotalReferences     int        `json:"total_references"`
	UniqueCategories    int        `json:"unique_categories"`
	ProcessingDateRange [2]*string `json:"processing_date_range"` // [null,null] when empty
}

// ProcessResponse is the API response for a processing request
type ProcessResponse struct {
	Statistics StatisticsSummary `json:"statistics"`
}

// DatasetMeta describes one persisted dataset run
type DatasetMeta struct {
	RunID          string    `json:"run_id"`
	RequestedCount int       `json:"requested_count"`
	ProcessedCount int       `json:"processed_count"`
	CSVPath        string    `json:"csv_path"`
	JSONPath       string    `json:"json_path"`
	CreatedAt      time.Time `json:"created_at"`
}
