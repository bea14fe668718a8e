package http

import (
	"net/http"
	"net/url"
)

const chromeVersion = "131"

const (
	userAgentWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/" + chromeVersion + ".0.0.0 Safari/537.36"
	userAgentLinux   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/" + chromeVersion + ".0.0.0 Safari/537.36"
)

// setBrowserHeaders makes a request look like it came from desktop Chrome
// on goos, navigating from the target's own home page.
//
// Accept-Encoding is set explicitly, which turns off the transport's
// transparent gzip handling; bodies go through Decompress instead.
func setBrowserHeaders(h http.Header, u *url.URL, goos string) {
	userAgent, platform := userAgentLinux, `"Linux"`
	if goos == "windows" {
		userAgent, platform = userAgentWindows, `"Windows"`
	}

	h.Set("User-Agent", userAgent)
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	h.Set("Accept-Language", "en-CA,en;q=0.9")
	h.Set("Accept-Encoding", "gzip, deflate, br")
	h.Set("Sec-Ch-Ua", `"Google Chrome";v="`+chromeVersion+`", "Chromium";v="`+chromeVersion+`"`)
	h.Set("Sec-Ch-Ua-Mobile", "?0")
	h.Set("Sec-Ch-Ua-Platform", platform)
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("Referer", u.Scheme+"://"+u.Host+"/")
}
