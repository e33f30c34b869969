package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"assetcrawler/internal/crawler"
	"assetcrawler/internal/domain"
	"assetcrawler/internal/models"
	"assetcrawler/internal/report"
	"assetcrawler/internal/requester"
)

type Service struct {
	config  models.Config
	crawler domain.Crawler
	slog    *zap.SugaredLogger
}

// NewService wires a requester, a report writer on out and a crawler from
// cfg. transport may be nil to use the default HTTP transport.
func NewService(cfg models.Config, transport http.RoundTripper, out io.Writer, slog *zap.SugaredLogger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if slog == nil {
		slog = zap.NewNop().Sugar()
	}

	r, err := requester.NewRequester(cfg.RequestTimeout, transport, slog,
		requester.WithUserAgent(cfg.UserAgent),
		requester.WithMaxBodySize(cfg.MaxBodySize),
	)
	if err != nil {
		return nil, fmt.Errorf("requester initialize error: %w", err)
	}

	format := report.FormatJSON
	if cfg.LegacyFormat {
		format = report.FormatLegacy
	}
	cr, err := crawler.NewCrawler(r, report.NewWriter(out, format), slog)
	if err != nil {
		return nil, fmt.Errorf("crawler initialize error: %w", err)
	}

	return &Service{config: cfg, crawler: cr, slog: slog}, nil
}

// Run crawls from the configured start URL until nothing is left to visit.
func (s *Service) Run(ctx context.Context) error {
	s.slog.Infow("run crawler", "url", s.config.StartURL, "timeout", s.config.RequestTimeout)
	stats, err := s.crawler.Crawl(ctx, s.config.StartURL)
	if err != nil {
		return err
	}
	s.slog.Infow("crawler done", "pages", stats.Pages, "skipped", stats.Skipped)
	return nil
}
