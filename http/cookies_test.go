package http_test

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/jobfetch"
	jobhttp "github.com/fwojciec/jobfetch/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieFile = "# Netscape HTTP Cookie File\n" +
	"# This is a generated file! Do not edit.\n" +
	"\n" +
	".linkedin.com\tTRUE\t/\tTRUE\t1\tbcookie\t\"v=2&abc\"\n" +
	"#HttpOnly_.www.linkedin.com\tTRUE\t/\tTRUE\t1999999999\tli_at\ttoken\n" +
	"ca.indeed.com\tFALSE\t/\tFALSE\t0\tCTK\tk1\n" +
	".indeed.com\tTRUE\t/jobs\tFALSE\t0\tPATHED\tp\n"

func cookieValues(jar http.CookieJar, rawURL string) map[string]string {
	u, _ := url.Parse(rawURL)
	values := make(map[string]string)
	for _, c := range jar.Cookies(u) {
		values[c.Name] = c.Value
	}
	return values
}

func TestReadCookieJar(t *testing.T) {
	t.Parallel()

	t.Run("loads domain cookies for subdomains regardless of expiry", func(t *testing.T) {
		t.Parallel()

		jar, err := jobhttp.ReadCookieJar(strings.NewReader(cookieFile))
		require.NoError(t, err)

		got := cookieValues(jar, "https://www.linkedin.com/jobs/view/1")

		assert.Equal(t, map[string]string{"bcookie": "v=2&abc", "li_at": "token"}, got)
	})

	t.Run("withholds secure cookies from plain http", func(t *testing.T) {
		t.Parallel()

		jar, err := jobhttp.ReadCookieJar(strings.NewReader(cookieFile))
		require.NoError(t, err)

		assert.Empty(t, cookieValues(jar, "http://www.linkedin.com/"))
	})

	t.Run("keeps host-only cookies on their host", func(t *testing.T) {
		t.Parallel()

		jar, err := jobhttp.ReadCookieJar(strings.NewReader(cookieFile))
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"CTK": "k1"}, cookieValues(jar, "https://ca.indeed.com/viewjob"))
		assert.Empty(t, cookieValues(jar, "https://www.indeed.com/viewjob"))
	})

	t.Run("honors cookie paths", func(t *testing.T) {
		t.Parallel()

		jar, err := jobhttp.ReadCookieJar(strings.NewReader(cookieFile))
		require.NoError(t, err)

		assert.Equal(t, "p", cookieValues(jar, "https://www.indeed.com/jobs/1")["PATHED"])
	})

	t.Run("rejects lines with the wrong number of fields", func(t *testing.T) {
		t.Parallel()

		_, err := jobhttp.ReadCookieJar(strings.NewReader("# header\n.indeed.com TRUE / FALSE 0 CTK k1\n"))

		assert.Equal(t, jobfetch.EINVALID, jobfetch.ErrorCode(err))
		assert.Contains(t, jobfetch.ErrorMessage(err), "line 2")
	})
}

func TestLoadCookieJar(t *testing.T) {
	t.Parallel()

	t.Run("reads a cookie file from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cookies.txt")
		require.NoError(t, os.WriteFile(path, []byte(cookieFile), 0644))

		jar, err := jobhttp.LoadCookieJar(path)
		require.NoError(t, err)

		assert.Equal(t, "k1", cookieValues(jar, "https://ca.indeed.com/")["CTK"])
	})

	t.Run("returns not found for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := jobhttp.LoadCookieJar(filepath.Join(t.TempDir(), "missing.txt"))

		assert.Equal(t, jobfetch.ENOTFOUND, jobfetch.ErrorCode(err))
	})
}
