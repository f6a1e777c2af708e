package static

import (
	"bytes"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"isoserve/core/middleware/isolation"
	"isoserve/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, data, 0o644))
}

// setupFilesystemApp serves <tmp>/public and leaves <tmp>/secret.txt just
// outside the document root.
func setupFilesystemApp(t *testing.T, browse bool) (*fiber.App, string) {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "public")

	writeFile(t, filepath.Join(root, "index.html"), []byte(indexHTML))
	writeFile(t, filepath.Join(root, "app.js"), []byte("console.log(1)"))
	writeFile(t, filepath.Join(root, "docs", "readme.txt"), []byte("read me"))
	writeFile(t, filepath.Join(base, "secret.txt"), []byte("top secret"))

	app := fiber.New()
	app.Use(isolation.New())
	feature := NewFeature(server.Config{Root: root, Index: "index.html", Browse: browse}, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, root
}

func TestFilesystem_File(t *testing.T) {
	app, _ := setupFilesystemApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/index.html", nil))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assertIsolated(t, resp)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Equal(t, int64(len(indexHTML)), resp.ContentLength)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, indexHTML, string(body))
}

func TestFilesystem_ContentType(t *testing.T) {
	app, _ := setupFilesystemApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/app.js", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "javascript")
}

func TestFilesystem_LargeFileLength(t *testing.T) {
	app, root := setupFilesystemApp(t, true)
	data := bytes.Repeat([]byte("0123456789abcdef"), 8192)
	writeFile(t, filepath.Join(root, "blob.bin"), data)

	resp, err := app.Test(httptest.NewRequest("GET", "/blob.bin", nil), 5000)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, int64(len(data)), resp.ContentLength)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, body))
}

func TestFilesystem_RewrittenFile(t *testing.T) {
	app, root := setupFilesystemApp(t, true)
	name := filepath.Join(root, "a.txt")

	for _, content := range []string{"version-one", "v2", "version-three-longer"} {
		writeFile(t, name, []byte(content))

		resp, err := app.Test(httptest.NewRequest("GET", "/a.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int64(len(content)), resp.ContentLength)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, content, string(body))
	}
}

func TestFilesystem_EscapedName(t *testing.T) {
	app, root := setupFilesystemApp(t, true)
	writeFile(t, filepath.Join(root, "my notes.txt"), []byte("notes"))

	resp, err := app.Test(httptest.NewRequest("GET", "/my%20notes.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "notes", string(body))
}

func TestFilesystem_Head(t *testing.T) {
	app, _ := setupFilesystemApp(t, true)

	resp, err := app.Test(httptest.NewRequest("HEAD", "/index.html", nil))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assertIsolated(t, resp)
	assert.Equal(t, int64(len(indexHTML)), resp.ContentLength)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestFilesystem_DirectoryIndex(t *testing.T) {
	app, _ := setupFilesystemApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, indexHTML, string(body))
}

func TestFilesystem_DirectoryListing(t *testing.T) {
	t.Run("Browse", func(t *testing.T) {
		app, _ := setupFilesystemApp(t, true)

		resp, err := app.Test(httptest.NewRequest("GET", "/docs/", nil))
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assertIsolated(t, resp)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "readme.txt")
	})

	t.Run("NoBrowse", func(t *testing.T) {
		app, _ := setupFilesystemApp(t, false)

		resp, err := app.Test(httptest.NewRequest("GET", "/docs/", nil))
		require.NoError(t, err)

		assert.Equal(t, 404, resp.StatusCode)
		assertIsolated(t, resp)
	})
}

func TestFilesystem_NotFound(t *testing.T) {
	app, _ := setupFilesystemApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/missing.file", nil))
	require.NoError(t, err)

	assert.Equal(t, 404, resp.StatusCode)
	assertIsolated(t, resp)
}

func TestFilesystem_Traversal(t *testing.T) {
	app, _ := setupFilesystemApp(t, true)

	for _, p := range []string{"/../secret.txt", "/docs/../../secret.txt", "/%2e%2e/secret.txt", "/..%2fsecret.txt"} {
		t.Run(p, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", p, nil))
			require.NoError(t, err)

			assert.NotEqual(t, 200, resp.StatusCode)
			assertIsolated(t, resp)
			body, _ := io.ReadAll(resp.Body)
			assert.NotContains(t, string(body), "top secret")
		})
	}
}
