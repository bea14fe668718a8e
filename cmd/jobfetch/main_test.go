package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	main "github.com/fwojciec/jobfetch/cmd/jobfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingPage = `<html><head>
<script type="application/ld+json">{
  "@type": "JobPosting",
  "title": "Senior Engineer",
  "hiringOrganization": {"name": "Acme Corp"},
  "description": "<p>Build things.</p><p>Ship them.</p>"
}</script>
</head><body></body></html>`

func writePage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posting.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := &main.Main{}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "jobfetch")
	assert.Contains(t, stdout.String(), "source")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := &main.Main{}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_SavedPage(t *testing.T) {
	t.Parallel()

	t.Run("writes the job folder", func(t *testing.T) {
		t.Parallel()

		page := writePage(t, postingPage)
		out := t.TempDir()
		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-o", out, page}, &stdout, &stderr)

		require.NoError(t, err)
		folder := filepath.Join(out, "Seni-Engi-Acme-Corp")
		assert.Contains(t, stdout.String(), "Created folder: "+folder)
		assert.Contains(t, stdout.String(), "Wrote description: "+filepath.Join(folder, "Seni-Engi-Acme-Corp.txt"))
		assert.NotContains(t, stdout.String(), "Wrote prompt")

		content, err := os.ReadFile(filepath.Join(folder, "Seni-Engi-Acme-Corp.txt"))
		require.NoError(t, err)
		assert.Equal(t, "Build things.\nShip them.\n", string(content))
	})

	t.Run("writes a prompt when templates are configured", func(t *testing.T) {
		t.Parallel()

		templates := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(templates, "templates"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(templates, "templates", "prompt-template.txt"), []byte("Tailor my resume.\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(templates, "templates", "cover-letter-template.txt"), []byte("Write a cover letter.\n"), 0644))

		page := writePage(t, postingPage)
		out := t.TempDir()
		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-o", out, "--templates", templates, page}, &stdout, &stderr)

		require.NoError(t, err)
		promptPath := filepath.Join(out, "Seni-Engi-Acme-Corp", "prompt.txt")
		assert.Contains(t, stdout.String(), "Wrote prompt: "+promptPath)
		content, err := os.ReadFile(promptPath)
		require.NoError(t, err)
		assert.Equal(t, "Tailor my resume.\n\nWrite a cover letter.\n\nBuild things.\nShip them.\n", string(content))
	})

	t.Run("dry run prints without writing", func(t *testing.T) {
		t.Parallel()

		page := writePage(t, postingPage)
		out := t.TempDir()
		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-o", out, "--dry-run", page}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Title: Senior Engineer")
		assert.Contains(t, stdout.String(), "Company: Acme Corp")
		assert.Contains(t, stdout.String(), "Folder: Seni-Engi-Acme-Corp")
		entries, err := os.ReadDir(out)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("duplicate inputs are written once", func(t *testing.T) {
		t.Parallel()

		page := writePage(t, postingPage)
		out := t.TempDir()
		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-o", out, page, page}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, 1, bytes.Count(stdout.Bytes(), []byte("Created folder:")))
		assert.Contains(t, stdout.String(), "same job as "+page)
	})
}

func TestMain_Run_Failures(t *testing.T) {
	t.Parallel()

	t.Run("reports pages without a job", func(t *testing.T) {
		t.Parallel()

		page := writePage(t, "<html><body><p>Nothing here</p></body></html>")
		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-o", t.TempDir(), page}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: No job data found at "+page)
	})

	t.Run("keeps going after a failed source", func(t *testing.T) {
		t.Parallel()

		good := writePage(t, postingPage)
		bad := writePage(t, "<html><body>Please verify you are a human</body></html>")
		out := t.TempDir()
		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-o", out, bad, good}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 sources failed")
		assert.Contains(t, stderr.String(), "error: Site blocked by CAPTCHA")
		assert.Contains(t, stdout.String(), "Created folder:")
	})

	t.Run("reports a job missing its company", func(t *testing.T) {
		t.Parallel()

		page := writePage(t, `<script type="application/ld+json">{"@type":"JobPosting","title":"Engineer"}</script>`)
		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-o", t.TempDir(), page}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Job title or company missing in scraped data.")
	})

	t.Run("warns about an unreadable cookie file and continues", func(t *testing.T) {
		t.Parallel()

		page := writePage(t, postingPage)
		m := &main.Main{}
		var stdout, stderr bytes.Buffer
		missing := filepath.Join(t.TempDir(), "cookies.txt")

		err := m.Run(context.Background(), []string{"-o", t.TempDir(), "--cookies", missing, page}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "ignoring cookie file")
		assert.Contains(t, stdout.String(), "Created folder:")
	})

	t.Run("a missing default cookie file is not reported", func(t *testing.T) {
		t.Parallel()

		page := writePage(t, postingPage)
		m := &main.Main{CookiePath: filepath.Join(t.TempDir(), "cookies.txt")}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-o", t.TempDir(), page}, &stdout, &stderr)

		require.NoError(t, err)
		assert.NotContains(t, stderr.String(), "cookie")
	})
}

func TestMain_Run_RemotePage(t *testing.T) {
	t.Parallel()

	var gotCookie atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("li_at"); err == nil {
			gotCookie.Store(c.Value)
		}
		fmt.Fprint(w, postingPage)
	}))
	t.Cleanup(srv.Close)

	cookies := filepath.Join(t.TempDir(), "cookies.txt")
	line := "127.0.0.1\tFALSE\t/\tFALSE\t0\tli_at\tsecret\n"
	require.NoError(t, os.WriteFile(cookies, []byte("# Netscape HTTP Cookie File\n"+line), 0644))

	out := t.TempDir()
	m := &main.Main{Client: srv.Client()}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"-o", out, "--rate", "0", "--cookies", cookies, srv.URL + "/jobs/1"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "secret", gotCookie.Load())
	assert.DirExists(t, filepath.Join(out, "Seni-Engi-Acme-Corp"))
}

func TestMain_Run_ConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("applies values from the configuration file", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		config := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(config, []byte(fmt.Sprintf("out: %s\ndry_run: true\n", out)), 0644))

		page := writePage(t, postingPage)
		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--config", config, page}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Title: Senior Engineer")
	})

	t.Run("reads default configuration paths", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		config := filepath.Join(t.TempDir(), "jobfetch.yaml")
		require.NoError(t, os.WriteFile(config, []byte(fmt.Sprintf("out: %s\nwidth: 10\n", out)), 0644))

		page := writePage(t, postingPage)
		m := &main.Main{ConfigPaths: []string{filepath.Join(t.TempDir(), "missing.yaml"), config}}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{page}, &stdout, &stderr)

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(out, "Seni-Engi-Acme-Corp", "Seni-Engi-Acme-Corp.txt"))
		require.NoError(t, err)
		assert.Equal(t, "Build\nthings.\nShip them.\n", string(content))
	})

	t.Run("flags override the configuration file", func(t *testing.T) {
		t.Parallel()

		config := filepath.Join(t.TempDir(), "jobfetch.yaml")
		require.NoError(t, os.WriteFile(config, []byte("out: /nonexistent/should-not-be-used\n"), 0644))

		out := t.TempDir()
		page := writePage(t, postingPage)
		m := &main.Main{ConfigPaths: []string{config}}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-o", out, page}, &stdout, &stderr)

		require.NoError(t, err)
		assert.DirExists(t, filepath.Join(out, "Seni-Engi-Acme-Corp"))
	})
}
