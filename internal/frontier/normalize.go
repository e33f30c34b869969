package frontier

import "strings"

// Normalize returns the canonical form used for dedup and scope checks:
// the whole string lowercased, always ending with a slash.
func Normalize(url string) string {
	url = strings.ToLower(url)
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}

// InScope reports whether candidate belongs to the crawl rooted at root.
// The check is a plain substring containment of the normalized root,
// not a hostname comparison.
func InScope(candidate, root string) bool {
	return strings.Contains(Normalize(candidate), Normalize(root))
}
