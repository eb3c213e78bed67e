package http

import (
	"bytes"
	_ "embed"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skarvsladd/wikisite"
	wzip "github.com/skarvsladd/wikisite/zip"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MaxPaletteFileSize bounds palette uploads.
const MaxPaletteFileSize = 1 << 20

//go:embed docs.md
var docsMarkdown []byte

// Server exposes site generation to browser clients.
type Server struct {
	Builder   wikisite.SiteBuilder
	Packager  wikisite.Packager
	Previewer wikisite.Previewer
	Logger    *slog.Logger

	router *gin.Engine
	docs   []byte
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithPreviewer enables /api/preview.
func WithPreviewer(p wikisite.Previewer) ServerOption {
	return func(s *Server) {
		s.Previewer = p
	}
}

// NewServer creates a new Server and registers its routes. The usage guide
// is rendered once here.
func NewServer(builder wikisite.SiteBuilder, packager wikisite.Packager, logger *slog.Logger, opts ...ServerOption) (*Server, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	docs, err := RenderDocs(docsMarkdown)
	if err != nil {
		return nil, err
	}

	s := &Server{
		Builder:  builder,
		Packager: packager,
		Logger:   logger,
		router:   gin.New(),
		docs:     docs,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router.Use(gin.Recovery(), s.logRequests)

	s.router.GET("/", s.handleDocs)
	api := s.router.Group("/api")
	{
		api.GET("/options", s.handleOptions)
		api.POST("/palette", s.handlePalette)
		api.POST("/generate", s.handleGenerate)
		api.POST("/download", s.handleDownload)
		if s.Previewer != nil {
			api.POST("/preview", s.handlePreview)
		}
	}
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// RenderDocs converts the markdown usage guide into a standalone HTML page.
func RenderDocs(markdown []byte) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>wikisite</title></head><body>\n")
	if err := md.Convert(markdown, &buf); err != nil {
		return nil, wikisite.Errorf(wikisite.EINTERNAL, "render docs: %v", err)
	}
	buf.WriteString("</body></html>\n")
	return buf.Bytes(), nil
}

func (s *Server) logRequests(c *gin.Context) {
	begin := time.Now()
	c.Next()
	s.Logger.Info("http",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(begin),
	)
}

func (s *Server) handleDocs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.docs)
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type optionsResponse struct {
	Frameworks     []option         `json:"frameworks"`
	Depths         []string         `json:"depths"`
	Fonts          []wikisite.Font  `json:"fonts"`
	DefaultPalette wikisite.Palette `json:"defaultPalette"`
	MinPalette     int              `json:"minPalette"`
	MaxPalette     int              `json:"maxPalette"`
}

func (s *Server) handleOptions(c *gin.Context) {
	resp := optionsResponse{
		Fonts:          wikisite.Fonts,
		DefaultPalette: wikisite.DefaultPalette(),
		MinPalette:     wikisite.MinPaletteSize,
		MaxPalette:     wikisite.MaxPaletteSize,
	}
	for _, f := range wikisite.Frameworks {
		resp.Frameworks = append(resp.Frameworks, option{Value: string(f), Label: f.Label()})
	}
	for _, d := range wikisite.Depths {
		resp.Depths = append(resp.Depths, string(d))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePalette(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		s.writeError(c, wikisite.Errorf(wikisite.EINVALID, "palette file required"))
		return
	}
	if fh.Size > MaxPaletteFileSize {
		s.writeError(c, wikisite.Errorf(wikisite.EINVALID, "palette file too large"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.writeError(c, wikisite.Errorf(wikisite.EINVALID, "could not read palette file: %v", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxPaletteFileSize))
	if err != nil {
		s.writeError(c, wikisite.Errorf(wikisite.EINVALID, "could not read palette file: %v", err))
		return
	}

	palette, err := wikisite.ParsePalette(fh.Filename, data)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"palette": palette})
}

// generateRequest is the JSON body for /api/generate. Empty fields take
// the default design's values.
type generateRequest struct {
	URL         string           `json:"url"`
	Palette     wikisite.Palette `json:"palette"`
	HeadingFont string           `json:"headingFont"`
	BodyFont    string           `json:"bodyFont"`
	Framework   string           `json:"framework"`
	Depth       string           `json:"depth"`
}

// Design resolves the request into a validated design.
func (r *generateRequest) Design() (wikisite.Design, error) {
	d := wikisite.DefaultDesign()
	if len(r.Palette) > 0 {
		d.Palette = r.Palette
	}

	var err error
	if r.Framework != "" {
		if d.Framework, err = wikisite.ParseFramework(r.Framework); err != nil {
			return d, err
		}
	}
	if r.Depth != "" {
		if d.Depth, err = wikisite.ParseDepth(r.Depth); err != nil {
			return d, err
		}
	}
	if r.HeadingFont != "" {
		if d.Fonts.Heading, err = wikisite.FindFont(r.HeadingFont); err != nil {
			return d, err
		}
	}
	if r.BodyFont != "" {
		if d.Fonts.Body, err = wikisite.FindFont(r.BodyFont); err != nil {
			return d, err
		}
	}
	return d, d.Validate()
}

type siteResponse struct {
	*wikisite.Site
	Checksum string `json:"checksum"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, wikisite.Errorf(wikisite.EINVALID, "invalid request body: %v", err))
		return
	}
	design, err := req.Design()
	if err != nil {
		s.writeError(c, err)
		return
	}

	site, err := s.Builder.BuildSite(c.Request.Context(), wikisite.BuildRequest{
		URL:    req.URL,
		Design: design,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	checksum := site.Checksum()
	c.Header("ETag", `"`+checksum+`"`)
	c.JSON(http.StatusOK, siteResponse{Site: site, Checksum: checksum})
}

type downloadRequest struct {
	HTML      string `json:"html"`
	Framework string `json:"framework"`
}

func (s *Server) handleDownload(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, wikisite.Errorf(wikisite.EINVALID, "invalid request body: %v", err))
		return
	}
	if req.HTML == "" {
		s.writeError(c, wikisite.Errorf(wikisite.EINVALID, "html required"))
		return
	}
	framework := wikisite.FrameworkTailwind
	if req.Framework != "" {
		f, err := wikisite.ParseFramework(req.Framework)
		if err != nil {
			s.writeError(c, err)
			return
		}
		framework = f
	}

	site := &wikisite.Site{HTML: req.HTML, Framework: framework}
	var buf bytes.Buffer
	if err := s.Packager.Package(&buf, site); err != nil {
		s.writeError(c, err)
		return
	}

	c.Header("ETag", `"`+site.Checksum()+`"`)
	c.Header("Content-Disposition", `attachment; filename="`+wzip.ArchiveName+`"`)
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

type previewRequest struct {
	HTML string `json:"html"`
}

func (s *Server) handlePreview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, wikisite.Errorf(wikisite.EINVALID, "invalid request body: %v", err))
		return
	}
	if req.HTML == "" {
		s.writeError(c, wikisite.Errorf(wikisite.EINVALID, "html required"))
		return
	}

	img, err := s.Previewer.Preview(c.Request.Context(), req.HTML)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

// StatusCode maps an application error code to an HTTP status.
func StatusCode(err error) int {
	switch wikisite.ErrorCode(err) {
	case wikisite.EINVALID:
		return http.StatusBadRequest
	case wikisite.EFETCH, wikisite.EGENERATE:
		return http.StatusBadGateway
	case wikisite.EEXTRACT:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := StatusCode(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("http error", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, gin.H{"error": wikisite.ErrorMessage(err)})
}
