// Package urlnorm canonicalizes story URLs and GUIDs so that trivially
// different spellings of the same address compare equal.
package urlnorm

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
)

const flags = purell.FlagsUsuallySafeGreedy |
	purell.FlagRemoveFragment |
	purell.FlagRemoveWWW |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagSortQuery

// Query parameters that only carry click tracking.
var trackingQueryKeys = map[string]struct{}{
	"fbclid":  {},
	"gclid":   {},
	"dclid":   {},
	"msclkid": {},
	"mc_cid":  {},
	"mc_eid":  {},
	"ref_src": {},
	"igshid":  {},
	"cmpid":   {},
	"ocid":    {},
}

// Normalize returns the lossy canonical form of raw. It never fails: values
// that are not absolute http(s) URLs, GUIDs like "tag:site,2020:1" included,
// come back trimmed but otherwise unchanged.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return raw
	}

	scheme := strings.ToLower(parsed.Scheme)
	if (scheme != "http" && scheme != "https") || parsed.Host == "" {
		return trimmed
	}

	host := strings.ToLower(parsed.Hostname())
	if port := parsed.Port(); port != "" {
		defaultPort := (scheme == "http" && port == "80") || (scheme == "https" && port == "443")
		if !defaultPort {
			host = host + ":" + port
		}
	}
	parsed.Host = host

	// http and https variants of a story are the same story.
	parsed.Scheme = "http"
	parsed.User = nil

	q := parsed.Query()
	for key := range q {
		lower := strings.ToLower(key)
		if strings.HasPrefix(lower, "utm_") {
			q.Del(key)
			continue
		}
		if _, ok := trackingQueryKeys[lower]; ok {
			q.Del(key)
		}
	}
	parsed.RawQuery = q.Encode()

	return purell.NormalizeURL(parsed, flags)
}

// Variants returns the distinct set of values in, each followed by its
// normalized form. Order follows first appearance.
func Variants(values ...string) []string {
	seen := make(map[string]struct{}, len(values)*2)
	out := make([]string, 0, len(values)*2)

	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for _, v := range values {
		add(v)
		add(Normalize(v))
	}
	return out
}
