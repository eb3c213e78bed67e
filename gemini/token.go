package gemini

import (
	"context"

	"github.com/skarvsladd/wikisite"
	"google.golang.org/genai/tokenizer"
)

var _ wikisite.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens locally with the tokenizer matching a
// Gemini model, so oversized articles show up in logs before the site call.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model. An empty
// model selects DefaultSiteModel.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultSiteModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EINVALID, "no local tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens(userContent(text), nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
