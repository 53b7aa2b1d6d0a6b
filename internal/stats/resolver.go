package stats

import "strings"

// URLResolver maps a network identifier to the base URL of its stats API.
type URLResolver struct {
	baseURL    string
	legacyURLs map[string]string
}

// NewURLResolver creates a resolver using `{baseURL}/{networkID}` for every
// network, except for networks found in legacyURLs which use their own URL.
func NewURLResolver(baseURL string, legacyURLs map[string]string) *URLResolver {
	trimmed := make(map[string]string, len(legacyURLs))
	for networkID, url := range legacyURLs {
		trimmed[networkID] = strings.TrimRight(url, "/")
	}
	return &URLResolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		legacyURLs: trimmed,
	}
}

func (r *URLResolver) BaseURL(networkID string) string {
	url, ok := r.legacyURLs[networkID]
	if ok {
		return url
	}
	return r.baseURL + "/" + networkID
}
