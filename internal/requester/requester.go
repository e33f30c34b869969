package requester

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"assetcrawler/internal/domain"
	"assetcrawler/internal/page"
)

var (
	errIncorrectTimeout = errors.New("incorrect timeout value, should be > 0")

	ErrUnexpectedStatus       = errors.New("unexpected http status")
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

const defaultMaxBodySize = 10 * 1024 * 1024

type requester struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
	slog        *zap.SugaredLogger
}

// Option tunes a requester.
type Option func(*requester)

func WithUserAgent(ua string) Option {
	return func(r *requester) {
		r.userAgent = ua
	}
}

func WithMaxBodySize(size int64) Option {
	return func(r *requester) {
		if size > 0 {
			r.maxBodySize = size
		}
	}
}

// NewRequester builds a requester whose requests time out after timeout.
// A nil transport means http.DefaultTransport.
func NewRequester(timeout time.Duration, transport http.RoundTripper, slog *zap.SugaredLogger, opts ...Option) (*requester, error) {
	if timeout <= 0 {
		return nil, errIncorrectTimeout
	}
	if slog == nil {
		slog = zap.NewNop().Sugar()
	}
	r := &requester{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		maxBodySize: defaultMaxBodySize,
		slog:        slog,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *requester) Get(ctx context.Context, url string) (domain.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		r.slog.Debugf("can't create http.Request: %s", err)
		return nil, err
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := r.client.Do(req)
	if err != nil {
		r.slog.Debugf("http transport error: %s", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	contentType := resp.Header.Get("Content-Type")
	if !isMarkup(contentType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, contentType)
	}

	body, err := r.readBody(resp.Body, contentType)
	if err != nil {
		r.slog.Debugf("can't read body: %s", err)
		return nil, err
	}

	location := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		location = resp.Request.URL
	}
	p, err := page.NewPage(body, location, r.slog)
	if err != nil {
		r.slog.Debugf("can't create page: %s", err)
		return nil, err
	}
	return p, nil
}

// readBody reads at most maxBodySize bytes; longer documents are parsed
// truncated.
func (r *requester) readBody(body io.Reader, contentType string) (io.Reader, error) {
	raw, err := io.ReadAll(io.LimitReader(body, r.maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > r.maxBodySize {
		r.slog.Debugw("body truncated", "limit", r.maxBodySize)
		raw = raw[:r.maxBodySize]
	}
	decoded, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		r.slog.Debugf("unknown charset, reading raw bytes: %s", err)
		return bytes.NewReader(raw), nil
	}
	return decoded, nil
}

// isMarkup accepts an absent content type, text/* and application XML
// types. Malformed parameters do not matter, only the media type does.
func isMarkup(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil && !errors.Is(err, mime.ErrInvalidMediaParameter) {
		return false
	}
	if strings.HasPrefix(mediaType, "text/") {
		return true
	}
	sub, ok := strings.CutPrefix(mediaType, "application/")
	return ok && (sub == "xml" || strings.HasSuffix(sub, "+xml"))
}
