package openai_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skarvsladd/wikisite"
	"github.com/skarvsladd/wikisite/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatServer answers chat completions with content and checks the request
// with inspect.
func chatServer(t *testing.T, content string, inspect func(req map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if inspect != nil {
			inspect(req)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server) *openai.SiteGenerator {
	t.Helper()
	client, err := openai.NewClient("test-key", srv.URL+"/v1")
	require.NoError(t, err)
	return openai.NewSiteGenerator(client, "")
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := openai.NewClient("", "")

	require.Error(t, err)
	assert.Equal(t, wikisite.EINVALID, wikisite.ErrorCode(err))
}

func TestSiteGenerator_GenerateSite(t *testing.T) {
	t.Parallel()

	t.Run("returns html_code from structured response", func(t *testing.T) {
		t.Parallel()

		srv := chatServer(t, `{"html_code":"<html><body>Hi</body></html>"}`, func(req map[string]any) {
			assert.Equal(t, openai.DefaultSiteModel, req["model"])
			format, _ := req["response_format"].(map[string]any)
			assert.Equal(t, "json_schema", format["type"])
		})

		html, err := newClient(t, srv).GenerateSite(context.Background(), "build a page")

		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hi</body></html>", html)
	})

	t.Run("missing field is a generation error", func(t *testing.T) {
		t.Parallel()

		srv := chatServer(t, `{"other":"x"}`, nil)

		_, err := newClient(t, srv).GenerateSite(context.Background(), "build a page")

		require.Error(t, err)
		assert.Equal(t, wikisite.EGENERATE, wikisite.ErrorCode(err))
	})

	t.Run("api failure is a generation error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
		}))
		t.Cleanup(srv.Close)

		_, err := newClient(t, srv).GenerateSite(context.Background(), "build a page")

		require.Error(t, err)
		assert.Equal(t, wikisite.EGENERATE, wikisite.ErrorCode(err))
		assert.Contains(t, wikisite.ErrorMessage(err), "OpenAI")
	})

	t.Run("empty prompt is invalid", func(t *testing.T) {
		t.Parallel()

		gen := openai.NewSiteGenerator(nil, "")

		_, err := gen.GenerateSite(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, wikisite.EINVALID, wikisite.ErrorCode(err))
	})
}

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("returns model text", func(t *testing.T) {
		t.Parallel()

		srv := chatServer(t, "Clean prose.", func(req map[string]any) {
			assert.Equal(t, openai.DefaultCleanModel, req["model"])
			msgs, _ := req["messages"].([]any)
			if assert.Len(t, msgs, 1) {
				msg, _ := msgs[0].(map[string]any)
				assert.Contains(t, msg["content"], "Raw [1] text")
			}
		})
		client, err := openai.NewClient("test-key", srv.URL+"/v1")
		require.NoError(t, err)

		got, err := openai.NewCleaner(client, "").Clean(context.Background(), "Raw [1] text")

		require.NoError(t, err)
		assert.Equal(t, "Clean prose.", got)
	})

	t.Run("empty text is an extraction error", func(t *testing.T) {
		t.Parallel()

		_, err := openai.NewCleaner(nil, "").Clean(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, wikisite.EEXTRACT, wikisite.ErrorCode(err))
	})
}

func TestImageGenerator_GenerateImage(t *testing.T) {
	t.Parallel()

	t.Run("decodes base64 image", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/images/generations", r.URL.Path)
			var req map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "1792x1024", req["size"])
			assert.Equal(t, "b64_json", req["response_format"])
			assert.EqualValues(t, 1, req["n"])

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"created": 1,
				"data":    []map[string]any{{"b64_json": base64.StdEncoding.EncodeToString([]byte("png-bytes"))}},
			})
		}))
		t.Cleanup(srv.Close)
		client, err := openai.NewClient("test-key", srv.URL+"/v1")
		require.NoError(t, err)

		img, err := openai.NewImageGenerator(client, "").GenerateImage(context.Background(), "a tower")

		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), img.Data)
		assert.Equal(t, "image/png", img.MIMEType)
	})

	t.Run("empty data is a generation error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"created":1,"data":[]}`))
		}))
		t.Cleanup(srv.Close)
		client, err := openai.NewClient("test-key", srv.URL+"/v1")
		require.NoError(t, err)

		_, err = openai.NewImageGenerator(client, "").GenerateImage(context.Background(), "a tower")

		require.Error(t, err)
		assert.Equal(t, wikisite.EGENERATE, wikisite.ErrorCode(err))
	})
}

func TestBuildSiteResponseFormat_IsStrictSchema(t *testing.T) {
	t.Parallel()

	format := openai.BuildSiteResponseFormat()

	require.NotNil(t, format.JSONSchema)
	assert.True(t, format.JSONSchema.Strict)

	raw, err := json.Marshal(format.JSONSchema.Schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {"html_code": {"type": "string", "description": "`+wikisite.SiteResponseDescription+`"}},
		"required": ["html_code"],
		"additionalProperties": false
	}`, string(raw))
}
