package gemini_test

import (
	"context"
	"testing"

	"github.com/skarvsladd/wikisite"
	"github.com/skarvsladd/wikisite/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewClient(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, wikisite.EINVALID, wikisite.ErrorCode(err))
}

func TestNewCleaner_DefaultsModel(t *testing.T) {
	t.Parallel()

	// nil client ok: empty input fails before any request
	cleaner := gemini.NewCleaner(nil, "")

	_, err := cleaner.Clean(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, wikisite.EEXTRACT, wikisite.ErrorCode(err))
}

func TestSiteGenerator_GenerateSite_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	gen := gemini.NewSiteGenerator(nil, "")

	_, err := gen.GenerateSite(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, wikisite.EINVALID, wikisite.ErrorCode(err))
	assert.Contains(t, wikisite.ErrorMessage(err), "site prompt required")
}

func TestImageGenerator_GenerateImage_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	gen := gemini.NewImageGenerator(nil, "")

	_, err := gen.GenerateImage(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, wikisite.EINVALID, wikisite.ErrorCode(err))
}

func TestBuildCleanConfig_SetsLowTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildCleanConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, *config.Temperature, 0.001)
}

func TestBuildSiteConfig_RequestsHTMLCodeField(t *testing.T) {
	t.Parallel()

	config := gemini.BuildSiteConfig()

	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.ResponseSchema)
	assert.Equal(t, genai.TypeObject, config.ResponseSchema.Type)
	assert.Equal(t, []string{"html_code"}, config.ResponseSchema.Required)

	field, ok := config.ResponseSchema.Properties["html_code"]
	require.True(t, ok)
	assert.Equal(t, genai.TypeString, field.Type)
	assert.NotEmpty(t, field.Description)
}

func TestBuildImageConfig_RequestsOneWideJPEG(t *testing.T) {
	t.Parallel()

	config := gemini.BuildImageConfig()

	assert.Equal(t, int32(1), config.NumberOfImages)
	assert.Equal(t, "16:9", config.AspectRatio)
	assert.Equal(t, "image/jpeg", config.OutputMIMEType)
}

func TestNewTokenCounter_RejectsUnsupportedModel(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewTokenCounter("not-a-gemini-model")

	require.Error(t, err)
	assert.Equal(t, wikisite.EINVALID, wikisite.ErrorCode(err))
}
