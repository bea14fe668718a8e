package jobfetch

import (
	"net/url"
	"strings"
)

// Site identifies a supported job site family.
type Site string

// Supported site families.
const (
	SiteUnknown  Site = ""
	SiteIndeed   Site = "indeed"
	SiteLinkedIn Site = "linkedin"
)

// Label returns a human-readable name for use in messages.
func (s Site) Label() string {
	switch s {
	case SiteIndeed:
		return "Indeed"
	case SiteLinkedIn:
		return "LinkedIn"
	default:
		return "Site"
	}
}

// hint returns the remediation suggested when the site refuses us.
func (s Site) hint() string {
	switch s {
	case SiteLinkedIn:
		return "Export cookies or save the page as HTML."
	case SiteIndeed:
		return "Refresh cookies or save the page as HTML."
	default:
		return "Save the page as HTML and pass the file path."
	}
}

// DetectSite returns the site family of a URL by inspecting its host.
// Returns SiteUnknown for unparseable URLs and unrecognized hosts.
func DetectSite(rawURL string) Site {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return SiteUnknown
	}
	return siteForHost(u.Hostname())
}

func siteForHost(host string) Site {
	host = strings.ToLower(host)
	switch {
	case strings.Contains(host, "linkedin.com"):
		return SiteLinkedIn
	case strings.Contains(host, "indeed.com"), strings.Contains(host, "indeed.ca"):
		return SiteIndeed
	}
	return SiteUnknown
}

// SiteDetector identifies the site family from page content.
// Used for saved snapshots, which carry no host to inspect.
type SiteDetector interface {
	// Detect returns SiteUnknown if the site cannot be determined.
	Detect(html string) Site
}
