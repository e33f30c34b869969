package page

import (
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

var (
	errNoLocation = errors.New("page location is required")
)

type page struct {
	doc  *goquery.Document
	base *url.URL
	slog *zap.SugaredLogger
}

// NewPage parses raw as HTML served from location. Relative attribute
// values resolve against the document's <base href> when it has one.
func NewPage(raw io.Reader, location *url.URL, slog *zap.SugaredLogger) (*page, error) {
	if slog == nil {
		slog = zap.NewNop().Sugar()
	}
	if location == nil {
		return nil, errNoLocation
	}
	doc, err := goquery.NewDocumentFromReader(raw)
	if err != nil {
		slog.Debugf("can't be parsed: %s", err)
		return nil, err
	}
	doc.Url = location

	p := &page{doc: doc, base: location, slog: slog}
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if base, ok := p.resolve(href); ok {
			p.base = base
		}
	}
	return p, nil
}

func (p *page) Location() string {
	return p.doc.Url.String()
}

func (p *page) AbsAttrs(selector, attr string) []string {
	var urls []string
	p.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		val, ok := s.Attr(attr)
		if !ok {
			return
		}
		abs, ok := p.resolve(val)
		if !ok {
			p.slog.Debugw("skip unresolvable attribute", "selector", selector, "value", val)
			return
		}
		urls = append(urls, abs.String())
	})
	return urls
}

func (p *page) resolve(ref string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return nil, false
	}
	return p.base.ResolveReference(u), true
}
