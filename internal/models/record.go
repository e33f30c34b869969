package models

// PageRecord is the unit emitted for every successfully fetched page.
type PageRecord struct {
	URL    string   `json:"url"`
	Assets []string `json:"assets"`
}

// CrawlStats summarises a finished crawl.
type CrawlStats struct {
	Pages    int
	Skipped  int
	Enqueued int
}
