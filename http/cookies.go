package http

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/jobfetch"
	"golang.org/x/net/publicsuffix"
)

// httpOnlyPrefix marks HttpOnly cookies in files written by curl and most
// browser export extensions.
const httpOnlyPrefix = "#HttpOnly_"

// LoadCookieJar reads a Netscape-format cookie file into a jar.
// Returns ENOTFOUND if the file does not exist.
func LoadCookieJar(path string) (http.CookieJar, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, jobfetch.Errorf(jobfetch.ENOTFOUND, "Cookie file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCookieJar(f)
}

// ReadCookieJar parses Netscape-format cookies from r into a jar.
//
// Each line holds seven tab-separated fields: domain, include-subdomains
// flag, path, secure flag, expiry, name and value. Expiry is ignored, so
// every cookie is loaded as a session cookie. Returns EINVALID for a line
// with the wrong number of fields.
func ReadCookieJar(r io.Reader) (http.CookieJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimRight(scanner.Text(), "\r\n")

		httpOnly := false
		if strings.HasPrefix(line, httpOnlyPrefix) {
			line = strings.TrimPrefix(line, httpOnlyPrefix)
			httpOnly = true
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "$") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			return nil, jobfetch.Errorf(jobfetch.EINVALID, "Invalid cookie file line %d: expected 7 tab-separated fields, got %d.", n, len(fields))
		}
		domain, subdomains, path, secure, name, value := fields[0], fields[1], fields[2], fields[3], fields[5], fields[6]
		if name == "" {
			continue
		}

		host := strings.TrimPrefix(domain, ".")
		if host == "" {
			continue
		}
		if path == "" {
			path = "/"
		}

		cookie := &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     path,
			Secure:   strings.EqualFold(secure, "TRUE"),
			HttpOnly: httpOnly,
		}
		if len(value) > 1 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
			cookie.Value = value[1 : len(value)-1]
			cookie.Quoted = true
		}
		if strings.EqualFold(subdomains, "TRUE") {
			cookie.Domain = host
		}

		jar.SetCookies(&url.URL{Scheme: "https", Host: host, Path: path}, []*http.Cookie{cookie})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return jar, nil
}

// sessionJar gives one Fetch call read access to the shared cookies while
// keeping cookies set by responses to itself.
type sessionJar struct {
	shared http.CookieJar
	local  *cookiejar.Jar
}

func newSessionJar(shared http.CookieJar) *sessionJar {
	// cookiejar.New only fails on invalid options.
	local, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return &sessionJar{shared: shared, local: local}
}

func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.local.SetCookies(u, cookies)
}

// Cookies returns the session's cookies for u followed by any shared
// cookies the session has not overridden.
func (j *sessionJar) Cookies(u *url.URL) []*http.Cookie {
	cookies := j.local.Cookies(u)
	if j.shared == nil {
		return cookies
	}

	seen := make(map[string]bool, len(cookies))
	for _, c := range cookies {
		seen[c.Name] = true
	}
	for _, c := range j.shared.Cookies(u) {
		if !seen[c.Name] {
			cookies = append(cookies, c)
		}
	}
	return cookies
}
