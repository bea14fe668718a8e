package jobfetch

import "strings"

var captchaMarkers = []string{
	"captcha",
	"verify you are a human",
}

var authWallMarkers = []string{
	"sign in to view",
	"join now to see",
	"authwall",
	`"isloggedin":false`,
}

// Classify explains why a document yielded no job. It always returns a
// non-nil error with code ECAPTCHA, EAUTHWALL or ENODATA. Auth walls are
// only recognized for LinkedIn pages.
func Classify(html string, site Site, url string) error {
	lower := strings.ToLower(html)
	switch {
	case containsAny(lower, captchaMarkers):
		return Errorf(ECAPTCHA, "%s blocked by CAPTCHA at %s. Save the page as HTML and pass the file path.", site.Label(), url)
	case site == SiteLinkedIn && containsAny(lower, authWallMarkers):
		return Errorf(EAUTHWALL, "LinkedIn auth wall at %s. Export cookies or save the page as HTML.", url)
	}
	return Errorf(ENODATA, "No job data found at %s (%s). Try saving the page as HTML.", url, site.Label())
}

// BlockedError reports a site that kept refusing requests after the retry.
func BlockedError(site Site, status int, url string, err error) error {
	return WrapErrorf(err, EBLOCKED, "%s blocked (%d) at %s. %s", site.Label(), status, url, site.hint())
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
