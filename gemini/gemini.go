// Package gemini implements the wikisite model collaborators on the Google
// Gemini API: article cleaning, site generation with a structured response
// schema, and Imagen hero images.
package gemini

import (
	"context"

	"github.com/skarvsladd/wikisite"
	"google.golang.org/genai"
)

// Default models.
const (
	DefaultCleanModel = "gemini-flash-lite-latest"
	DefaultSiteModel  = "gemini-2.5-pro"
	DefaultImageModel = "imagen-4.0-generate-001"
)

// NewClient connects to the Gemini API.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, wikisite.Errorf(wikisite.EINVALID, "Gemini API key required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// userContent wraps a prompt as a single user turn.
func userContent(prompt string) []*genai.Content {
	return []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}
}
