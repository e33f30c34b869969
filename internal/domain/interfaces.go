package domain

import (
	"context"

	"assetcrawler/internal/models"
)

// Page is a fetched and parsed HTML document.
type Page interface {
	// Location is the final URL of the document after redirects.
	Location() string
	// AbsAttrs selects elements matching selector and returns attr of each,
	// resolved to an absolute URL, in document order.
	AbsAttrs(selector, attr string) []string
}

// Requester fetches and parses a single document.
type Requester interface {
	Get(ctx context.Context, url string) (Page, error)
}

// RecordWriter receives page records as they are produced.
type RecordWriter interface {
	Begin() error
	Write(rec models.PageRecord) error
	End() error
}

//Crawler - контракт краулера
type Crawler interface {
	Crawl(ctx context.Context, start string) (models.CrawlStats, error)
}
