package wikisite

import "context"

// Article is the cleaned content of a Wikipedia article.
type Article struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`

	// Outline lists the headings of the extracted article before cleaning.
	Outline []Heading `json:"outline,omitempty"`
}

// ArticleSource fetches and cleans articles.
type ArticleSource interface {
	// FetchArticle retrieves the article behind a Wikipedia URL.
	// Returns EINVALID for malformed URLs, EFETCH when the document cannot be
	// retrieved, and EEXTRACT when no usable content is found.
	FetchArticle(ctx context.Context, url string) (*Article, error)
}

// Cleaner turns raw article text into clean prose using a language model.
type Cleaner interface {
	Clean(ctx context.Context, text string) (string, error)
}
