package gemini

import (
	"context"

	"github.com/skarvsladd/wikisite"
	"google.golang.org/genai"
)

// Ensure Cleaner implements wikisite.Cleaner at compile time.
var _ wikisite.Cleaner = (*Cleaner)(nil)

// Cleaner removes citation markers and navigation remnants from article text
// using a fast Gemini model.
type Cleaner struct {
	client *genai.Client
	model  string
}

// NewCleaner creates a new Cleaner. An empty model selects DefaultCleanModel.
func NewCleaner(client *genai.Client, model string) *Cleaner {
	if model == "" {
		model = DefaultCleanModel
	}
	return &Cleaner{client: client, model: model}
}

// Clean returns the cleaned prose for raw article text.
func (c *Cleaner) Clean(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", wikisite.Errorf(wikisite.EEXTRACT, "no article text to clean")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		userContent(wikisite.BuildCleanPrompt(text)),
		BuildCleanConfig(),
	)
	if err != nil {
		return "", wikisite.Errorf(wikisite.EEXTRACT, "failed to clean article text: %v", err)
	}
	if result == nil {
		return "", wikisite.Errorf(wikisite.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildCleanConfig returns the GenerateContentConfig for cleaning calls.
func BuildCleanConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
