package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/quickpost/publisher/internal/config"
	"github.com/quickpost/publisher/internal/publish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

type contentsServer struct {
	mu    sync.Mutex
	files map[string]string
}

func newContentsServer(t *testing.T) (*contentsServer, string) {
	t.Helper()
	cs := &contentsServer{files: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Content string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		raw, _ := base64.StdEncoding.DecodeString(body.Content)
		cs.mu.Lock()
		cs.files[strings.TrimPrefix(r.URL.Path, "/repos/me/site/contents/")] = string(raw)
		cs.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"commit":{"sha":"deadbeef"}}`))
	}))
	t.Cleanup(srv.Close)
	return cs, srv.URL
}

func setGitHubEnv(t *testing.T, apiURL string) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_REPO", "me/site")
	t.Setenv("GITHUB_API_URL", apiURL)
	t.Setenv("PUBLISH_PATH_SCHEME", "dated")
	t.Setenv("PUBLIC_BASE_URL", "")
}

func TestPathCommand_Slug(t *testing.T) {
	t.Setenv("PUBLISH_PATH_SCHEME", "dated")

	out, err := run(t, "", "path", "--title", "Hello World", "--scheme", "slug")
	require.NoError(t, err)
	assert.Contains(t, out, "content/hello-world.md")
	assert.Contains(t, out, "articles/hello-world.html")
}

func TestPathCommand_UnknownScheme(t *testing.T) {
	t.Setenv("PUBLISH_PATH_SCHEME", "dated")

	_, err := run(t, "", "path", "--scheme", "weekly")
	require.Error(t, err)
}

func TestPublishCommand_Content(t *testing.T) {
	cs, url := newContentsServer(t)
	setGitHubEnv(t, url)

	out, err := run(t, "", "publish", "--title", "CLI post", "--content", "a\nb")
	require.NoError(t, err)
	assert.Contains(t, out, "Published to me/site")

	require.Len(t, cs.files, 1)
	for path, html := range cs.files {
		assert.True(t, strings.HasSuffix(path, ".html"), path)
		assert.Contains(t, out, path)
		assert.Contains(t, html, "<h1>CLI post</h1>")
		assert.Contains(t, html, "a<br>b")
	}
}

func TestPublishCommand_FileAndStdin(t *testing.T) {
	cs, url := newContentsServer(t)
	setGitHubEnv(t, url)

	body := filepath.Join(t.TempDir(), "body.txt")
	require.NoError(t, os.WriteFile(body, []byte("from a file"), 0o600))

	_, err := run(t, "", "publish", "--title", "f", "--file", body, "--scheme", "slug")
	require.NoError(t, err)
	assert.Contains(t, cs.files["articles/f.html"], "from a file")
	assert.Equal(t, "# f\n\nfrom a file", cs.files["content/f.md"])

	_, err = run(t, "piped <b>", "publish", "--title", "s", "--file", "-", "--scheme", "slug")
	require.NoError(t, err)
	assert.Contains(t, cs.files["articles/s.html"], "piped &lt;b&gt;")
}

func TestPublishCommand_Errors(t *testing.T) {
	cs, url := newContentsServer(t)
	setGitHubEnv(t, url)

	_, err := run(t, "", "publish", "--title", " ", "--content", "")
	require.True(t, errors.Is(err, publish.ErrEmptySubmission), "got %v", err)

	_, err = run(t, "", "publish", "--title", "x", "--content", "y", "--file", "z")
	require.Error(t, err)
	assert.Empty(t, cs.files)

	t.Setenv("GITHUB_TOKEN", "")
	_, err = run(t, "", "publish", "--title", "x", "--content", "y")
	require.True(t, errors.Is(err, config.ErrMissingGitHub), "got %v", err)
}
