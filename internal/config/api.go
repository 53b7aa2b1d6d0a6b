package config

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// API contains the settings of the retrieval stats API.
type API struct {
	BaseURL *string
	// LegacyURLs maps network identifiers to the base URL
	// of their legacy stats API.
	LegacyURLs map[string]string
	// WindowDays is the number of days, up to today included, of
	// the date range requested. Zero omits the date range.
	WindowDays *uint
}

func (a *API) setDefaults() {
	a.BaseURL = gosettings.DefaultPointer(a.BaseURL, "https://api.checker.network")
	if a.LegacyURLs == nil {
		a.LegacyURLs = map[string]string{
			"filecoin": "https://stats.filspark.com",
		}
	}
	const defaultWindowDays = 7
	a.WindowDays = gosettings.DefaultPointer(a.WindowDays, defaultWindowDays)
}

var (
	ErrURLSchemeNotValid = errors.New("url scheme is not valid")
	ErrURLHostEmpty      = errors.New("url host is empty")
	ErrWindowDaysTooHigh = errors.New("window days is too high")
)

func (a API) Validate() (err error) {
	err = validateHTTPURL(*a.BaseURL)
	if err != nil {
		return fmt.Errorf("base url: %w", err)
	}

	for networkID, legacyURL := range a.LegacyURLs {
		err = validateHTTPURL(legacyURL)
		if err != nil {
			return fmt.Errorf("legacy url for network %s: %w", networkID, err)
		}
	}

	const maxWindowDays = 365
	if *a.WindowDays > maxWindowDays {
		return fmt.Errorf("%w: %d must be at most %d",
			ErrWindowDaysTooHigh, *a.WindowDays, maxWindowDays)
	}
	return nil
}

func validateHTTPURL(s string) (err error) {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%w: %q must be http or https", ErrURLSchemeNotValid, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%w: in %s", ErrURLHostEmpty, s)
	}
	return nil
}

// Hosts returns the sorted unique hosts of the API URLs.
func (a API) Hosts() (hosts []string) {
	unique := make(map[string]struct{}, 1+len(a.LegacyURLs))
	for _, s := range append([]string{*a.BaseURL}, mapValues(a.LegacyURLs)...) {
		u, err := url.Parse(s)
		if err != nil {
			continue
		}
		unique[u.Hostname()] = struct{}{}
	}

	hosts = make([]string, 0, len(unique))
	for host := range unique {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}

func (a API) String() string {
	return a.toLinesNode().String()
}

func (a API) toLinesNode() *gotree.Node {
	node := gotree.New("Stats API")
	node.Appendf("Base URL: %s", *a.BaseURL)
	if len(a.LegacyURLs) > 0 {
		legacyNode := node.Appendf("Legacy URLs")
		networkIDs := mapKeys(a.LegacyURLs)
		for _, networkID := range networkIDs {
			legacyNode.Appendf("%s: %s", networkID, a.LegacyURLs[networkID])
		}
	}
	if *a.WindowDays == 0 {
		node.Appendf("Date range: API default")
	} else {
		node.Appendf("Date range: last %d day(s)", *a.WindowDays)
	}
	return node
}

var ErrLegacyURLMalformed = errors.New("legacy url is malformed")

func (a *API) read(r *reader.Reader) (err error) {
	a.BaseURL = r.Get("API_BASE_URL", reader.ForceLowercase(false))

	legacyURLs := r.CSV("API_LEGACY_URLS", reader.ForceLowercase(false))
	if legacyURLs != nil {
		a.LegacyURLs = make(map[string]string, len(legacyURLs))
		for _, keyValue := range legacyURLs {
			networkID, legacyURL, ok := strings.Cut(keyValue, "=")
			if !ok || networkID == "" || legacyURL == "" {
				return fmt.Errorf("environment variable API_LEGACY_URLS: %w: %q "+
					"must be in the form network=url", ErrLegacyURLMalformed, keyValue)
			}
			a.LegacyURLs[strings.ToLower(networkID)] = legacyURL
		}
	}

	a.WindowDays, err = readUintPtr(r, "API_WINDOW_DAYS")
	return err
}

func mapKeys(m map[string]string) (keys []string) {
	keys = make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func mapValues(m map[string]string) (values []string) {
	keys := mapKeys(m)
	values = make([]string, len(keys))
	for i, key := range keys {
		values[i] = m[key]
	}
	return values
}
