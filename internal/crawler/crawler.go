package crawler

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"assetcrawler/internal/domain"
	"assetcrawler/internal/frontier"
	"assetcrawler/internal/models"
)

var (
	errNoRequester = errors.New("requester is required")
	errNoWriter    = errors.New("record writer is required")

	ErrStartUnreachable = errors.New("start url is unreachable")
)

type crawler struct {
	r    domain.Requester
	out  domain.RecordWriter
	slog *zap.SugaredLogger
}

// crawlState lives for a single Crawl call.
type crawlState struct {
	root     string
	frontier *frontier.Frontier
	stats    models.CrawlStats
}

func NewCrawler(r domain.Requester, out domain.RecordWriter, slog *zap.SugaredLogger) (*crawler, error) {
	if r == nil {
		return nil, errNoRequester
	}
	if out == nil {
		return nil, errNoWriter
	}
	if slog == nil {
		slog = zap.NewNop().Sugar()
	}
	return &crawler{r: r, out: out, slog: slog}, nil
}

// Crawl visits every page reachable from start whose URL stays within the
// start page's location, breadth first, writing one record per fetched page.
// Pages that fail to fetch are skipped. A failing start URL or writer ends
// the crawl with an error. A cancelled ctx stops the loop, closes the output
// and returns the context error.
func (c *crawler) Crawl(ctx context.Context, start string) (models.CrawlStats, error) {
	first, err := c.r.Get(ctx, start)
	if err != nil {
		return models.CrawlStats{}, fmt.Errorf("%w: %s: %w", ErrStartUnreachable, start, err)
	}

	st := &crawlState{
		root:     frontier.Normalize(first.Location()),
		frontier: frontier.New(),
	}
	if err := st.frontier.Seed(st.root); err != nil {
		return st.stats, err
	}
	c.slog.Infow("crawl started", "root", st.root)

	if err := c.out.Begin(); err != nil {
		return st.stats, err
	}
	for {
		url, ok := st.frontier.Dequeue()
		if !ok {
			break
		}

		p := first
		if p == nil {
			if ctx.Err() != nil {
				break
			}
			p, err = c.r.Get(ctx, url)
			if err != nil {
				//Страница недоступна - пропускаем её вместе со ссылками
				c.slog.Debugw("skip page", "url", url, "error", err)
				st.stats.Skipped++
				continue
			}
		}
		first = nil

		if err := c.visit(st, p); err != nil {
			return st.stats, err
		}
	}
	if err := c.out.End(); err != nil {
		return st.stats, err
	}
	st.stats.Enqueued = st.frontier.Visited()
	if err := ctx.Err(); err != nil {
		c.slog.Warnw("crawl interrupted", "pages", st.stats.Pages, "pending", st.frontier.Len())
		return st.stats, fmt.Errorf("crawl interrupted: %w", err)
	}
	c.slog.Infow("crawl finished", "pages", st.stats.Pages, "skipped", st.stats.Skipped, "enqueued", st.stats.Enqueued)
	return st.stats, nil
}

func (c *crawler) visit(st *crawlState, p domain.Page) error {
	rec := models.PageRecord{
		URL:    p.Location(),
		Assets: ExtractAssets(p),
	}
	if err := c.out.Write(rec); err != nil {
		return fmt.Errorf("write record %s: %w", rec.URL, err)
	}
	st.stats.Pages++
	c.enqueueLinks(st, p)
	return nil
}

// enqueueLinks adds in-scope, unseen links. Out-of-scope links are not
// remembered at all.
func (c *crawler) enqueueLinks(st *crawlState, p domain.Page) {
	for _, link := range DiscoverLinks(p) {
		link = frontier.Normalize(link)
		if !frontier.InScope(link, st.root) {
			continue
		}
		if st.frontier.TryEnqueue(link) {
			c.slog.Debugw("enqueued", "url", link)
		}
	}
}
