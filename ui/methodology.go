package ui

import (
	"embed"
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed docs/*.md
var methodologyFiles embed.FS

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

const methodologyShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>drawlab methodology</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: Georgia, serif; line-height: 1.6; }
code { background: #f4f4f4; padding: 0.1rem 0.3rem; }
</style>
</head>
<body>
%s
</body>
</html>`

// handleMethodology renders an embedded methodology page as HTML.
func (s *Server) handleMethodology(c *gin.Context) {
	slug := c.Param("slug")
	if !slugPattern.MatchString(slug) {
		c.String(http.StatusNotFound, "unknown methodology page")
		return
	}

	source, err := methodologyFiles.ReadFile("docs/" + slug + ".md")
	if err != nil {
		c.String(http.StatusNotFound, "unknown methodology page")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML(source, p, renderer)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, fmt.Sprintf(methodologyShell, body))
}
