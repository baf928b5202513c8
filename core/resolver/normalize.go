// ABOUTME: Facebook URL normalization applied before pattern matching
// ABOUTME: Repairs schemes, decodes percent-encoding and strips tracking params

package resolver

import (
	"net/url"
	"regexp"
	"strings"
)

// fbTrackingParams are query parameters Facebook appends for click tracking.
// They never carry identifying information and break pattern matching when
// left in place.
var fbTrackingParams = []string{
	"fbclid", "__tn__", "__cft__", "__xts__", "_ft_",
	"comment_id", "comment_tracking", "hc_location", "hc_ref",
	"ftentidentifier", "fref", "notif_id", "notif_t",
	"ref", "ref_type", "_rdr", "refsrc", "referrer",
	"redirect_uri", "entry_point", "paipv",
}

var fbBareHostPattern = regexp.MustCompile(`^(?:www\.|m\.|mbasic\.)?(?:facebook\.com|fb\.watch|fb\.gg)/`)

// NormalizeFacebookURL prepares a Facebook link for identifier matching.
// Scheme-less links get https, percent-encoded links are decoded once, and
// known tracking parameters are removed.
func NormalizeFacebookURL(raw string) string {
	s := strings.TrimSpace(raw)

	if fbBareHostPattern.MatchString(s) {
		s = "https://" + s
	}

	if strings.Contains(s, "%") {
		if decoded, err := url.QueryUnescape(s); err == nil {
			s = decoded
		}
	}

	if u, err := url.Parse(s); err == nil && u.Host != "" {
		q := u.Query()
		for _, param := range fbTrackingParams {
			q.Del(param)
		}
		u.RawQuery = q.Encode()
		s = u.String()
	}

	s = strings.ReplaceAll(s, "??", "?")
	return strings.TrimRight(s, "?&#")
}
