package crawler

import "assetcrawler/internal/domain"

// Asset categories in emission order. link[href] is taken as a stylesheet
// whatever its rel.
var assetSelectors = []struct {
	selector string
	attr     string
}{
	{"img[src]", "src"},
	{"script[src]", "src"},
	{"link[href]", "href"},
}

// ExtractAssets returns the page's images, then scripts, then stylesheets.
// Repeated URLs are kept.
func ExtractAssets(p domain.Page) []string {
	assets := make([]string, 0)
	for _, s := range assetSelectors {
		assets = append(assets, p.AbsAttrs(s.selector, s.attr)...)
	}
	return assets
}

// DiscoverLinks returns the absolute targets of every anchor with an href.
func DiscoverLinks(p domain.Page) []string {
	return p.AbsAttrs("a[href]", "href")
}
