package http_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skarvsladd/wikisite"
	whttp "github.com/skarvsladd/wikisite/http"
	"github.com/skarvsladd/wikisite/mock"
	wzip "github.com/skarvsladd/wikisite/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, builder wikisite.SiteBuilder) *whttp.Server {
	t.Helper()
	s, err := whttp.NewServer(builder, wzip.NewPackager(), nil)
	require.NoError(t, err)
	return s
}

func do(s http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestServer_Docs(t *testing.T) {
	t.Parallel()

	w := do(newServer(t, nil), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h1>wikisite</h1>")
	assert.Contains(t, w.Body.String(), "<table>")
}

func TestServer_Options(t *testing.T) {
	t.Parallel()

	w := do(newServer(t, nil), httptest.NewRequest(http.MethodGet, "/api/options", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Frameworks []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"frameworks"`
		Depths         []string        `json:"depths"`
		Fonts          []wikisite.Font `json:"fonts"`
		DefaultPalette []string        `json:"defaultPalette"`
		MinPalette     int             `json:"minPalette"`
		MaxPalette     int             `json:"maxPalette"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Frameworks, 3)
	assert.Equal(t, "Tailwind CSS", body.Frameworks[0].Label)
	assert.Equal(t, []string{"summary", "multi-section", "comprehensive"}, body.Depths)
	assert.Len(t, body.Fonts, len(wikisite.Fonts))
	assert.Len(t, body.DefaultPalette, 5)
	assert.Equal(t, 2, body.MinPalette)
	assert.Equal(t, 8, body.MaxPalette)
}

func paletteUpload(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/palette", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestServer_Palette(t *testing.T) {
	t.Parallel()

	t.Run("parses css upload", func(t *testing.T) {
		t.Parallel()

		w := do(newServer(t, nil), paletteUpload(t, "theme.css", "a{color:#fff} b{background: rgb(1, 2, 3)}"))

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Palette []string `json:"palette"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"#fff", "rgb(1, 2, 3)"}, body.Palette)
	})

	t.Run("rejects unsupported file type", func(t *testing.T) {
		t.Parallel()

		w := do(newServer(t, nil), paletteUpload(t, "colors.txt", "#fff #000"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, decodeError(t, w))
	})

	t.Run("missing file is a bad request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/palette", nil)
		w := do(newServer(t, nil), req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "palette file required", decodeError(t, w))
	})
}

func TestServer_Generate(t *testing.T) {
	t.Parallel()

	t.Run("builds site from request design", func(t *testing.T) {
		t.Parallel()

		var got wikisite.BuildRequest
		builder := &mock.SiteBuilder{
			BuildSiteFn: func(_ context.Context, req wikisite.BuildRequest) (*wikisite.Site, error) {
				got = req
				return &wikisite.Site{ID: "run-1", Title: "Go", HTML: "<html>go</html>", Framework: req.Design.Framework}, nil
			},
		}

		w := do(newServer(t, builder), jsonRequest(t, "/api/generate", map[string]any{
			"url":         "https://en.wikipedia.org/wiki/Go",
			"framework":   "react",
			"depth":       "summary",
			"headingFont": "Montserrat",
			"palette":     []string{"#000000", "#ffffff"},
		}))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Go", got.URL)
		assert.Equal(t, wikisite.FrameworkReact, got.Design.Framework)
		assert.Equal(t, wikisite.DepthSummary, got.Design.Depth)
		require.NotNil(t, got.Design.Fonts.Heading)
		assert.Equal(t, "Montserrat", got.Design.Fonts.Heading.Name)
		assert.Nil(t, got.Design.Fonts.Body)
		assert.Equal(t, wikisite.Palette{"#000000", "#ffffff"}, got.Design.Palette)

		site := &wikisite.Site{HTML: "<html>go</html>"}
		assert.Equal(t, `"`+site.Checksum()+`"`, w.Header().Get("ETag"))
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "run-1", body["id"])
		assert.Equal(t, "<html>go</html>", body["html"])
		assert.Equal(t, "react", body["framework"])
		assert.Equal(t, site.Checksum(), body["checksum"])
	})

	t.Run("unknown font is a bad request", func(t *testing.T) {
		t.Parallel()

		w := do(newServer(t, nil), jsonRequest(t, "/api/generate", map[string]any{
			"url":      "https://en.wikipedia.org/wiki/Go",
			"bodyFont": "Comic Sans",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("palette too large is a bad request", func(t *testing.T) {
		t.Parallel()

		palette := strings.Split("#1 #2 #3 #4 #5 #6 #7 #8 #9", " ")
		w := do(newServer(t, nil), jsonRequest(t, "/api/generate", map[string]any{
			"url":     "https://en.wikipedia.org/wiki/Go",
			"palette": palette,
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps error codes to statuses", func(t *testing.T) {
		t.Parallel()

		cases := map[string]int{
			wikisite.EINVALID:  http.StatusBadRequest,
			wikisite.EFETCH:    http.StatusBadGateway,
			wikisite.EEXTRACT:  http.StatusUnprocessableEntity,
			wikisite.EGENERATE: http.StatusBadGateway,
			wikisite.EPACKAGE:  http.StatusInternalServerError,
			wikisite.EINTERNAL: http.StatusInternalServerError,
		}
		for code, status := range cases {
			builder := &mock.SiteBuilder{
				BuildSiteFn: func(context.Context, wikisite.BuildRequest) (*wikisite.Site, error) {
					return nil, wikisite.Errorf(code, "failure %s", code)
				},
			}

			w := do(newServer(t, builder), jsonRequest(t, "/api/generate", map[string]any{
				"url": "https://en.wikipedia.org/wiki/Go",
			}))

			assert.Equal(t, status, w.Code, code)
			assert.Equal(t, "failure "+code, decodeError(t, w), code)
		}
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")

		w := do(newServer(t, nil), req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_Download(t *testing.T) {
	t.Parallel()

	t.Run("returns zip archive", func(t *testing.T) {
		t.Parallel()

		w := do(newServer(t, nil), jsonRequest(t, "/api/download", map[string]any{
			"html":      "<html>react</html>",
			"framework": "react",
		}))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "ai-generated-website.zip")
		assert.NotEmpty(t, w.Header().Get("ETag"))

		zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
		require.NoError(t, err)
		var names []string
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		assert.ElementsMatch(t, []string{"index.html", "README.md"}, names)
	})

	t.Run("missing html is a bad request", func(t *testing.T) {
		t.Parallel()

		w := do(newServer(t, nil), jsonRequest(t, "/api/download", map[string]any{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "html required", decodeError(t, w))
	})
}

func TestServer_Preview(t *testing.T) {
	t.Parallel()

	t.Run("returns png screenshot", func(t *testing.T) {
		t.Parallel()

		var got string
		previewer := &mock.Previewer{
			PreviewFn: func(_ context.Context, html string) ([]byte, error) {
				got = html
				return []byte("\x89PNG"), nil
			},
		}
		s, err := whttp.NewServer(nil, wzip.NewPackager(), nil, whttp.WithPreviewer(previewer))
		require.NoError(t, err)

		w := do(s, jsonRequest(t, "/api/preview", map[string]any{"html": "<html>go</html>"}))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "\x89PNG", w.Body.String())
		assert.Equal(t, "<html>go</html>", got)
	})

	t.Run("render failure is a server error", func(t *testing.T) {
		t.Parallel()

		previewer := &mock.Previewer{
			PreviewFn: func(context.Context, string) ([]byte, error) {
				return nil, wikisite.Errorf(wikisite.EPREVIEW, "Failed to render preview: crashed")
			},
		}
		s, err := whttp.NewServer(nil, wzip.NewPackager(), nil, whttp.WithPreviewer(previewer))
		require.NoError(t, err)

		w := do(s, jsonRequest(t, "/api/preview", map[string]any{"html": "<html></html>"}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to render preview: crashed", decodeError(t, w))
	})

	t.Run("not routed without a previewer", func(t *testing.T) {
		t.Parallel()

		w := do(newServer(t, nil), jsonRequest(t, "/api/preview", map[string]any{"html": "<html></html>"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStatusCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusInternalServerError, whttp.StatusCode(io.EOF))
}
