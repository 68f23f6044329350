package web

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"travelrec/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Embed static directory files
//
//go:embed all:static
var staticFiles embed.FS

// StaticFS returns the embedded static files rooted at the static directory.
// The bundled dataset lives at its top level.
func StaticFS() fs.FS {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "static" is fixed
		panic(err)
	}
	return staticFS
}

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	staticFS := StaticFS()

	// Serve /favicon.ico as an inline SVG so no separate icon file is needed
	const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#1f6f8b"/><circle cx="250" cy="250" r="150" fill="none" stroke="white" stroke-width="30"/><path d="M250 100 L290 250 L250 400 L210 250 Z" fill="white"/></svg>`

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	// The dataset is published next to the page so it can be referenced
	// relatively. It is never cached: every search reads it afresh.
	s.Get("/"+models.DatasetFileName, func(c rweb.Context) error {
		return serveStaticFile(c, staticFS, models.DatasetFileName, "no-cache")
	})

	// Serve static files at /static/ path
	s.Get("/static/*", func(c rweb.Context) error {
		path := strings.TrimPrefix(c.Request().Path(), "/static/")
		return serveStaticFile(c, staticFS, path, "public, max-age=3600") // 1 hour
	})
}

// serveStaticFile writes one file from staticFS, or a bare status on failure
func serveStaticFile(c rweb.Context, staticFS fs.FS, path, cacheControl string) error {
	file, err := staticFS.Open(path)
	if err != nil {
		c.SetStatus(http.StatusNotFound)
		return nil
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		logger.LogErr(err, "failed to stat static file", "path", path)
		c.SetStatus(http.StatusInternalServerError)
		return nil
	}

	if stat.IsDir() {
		c.SetStatus(http.StatusNotFound)
		return nil
	}

	if contentType := getContentType(path); contentType != "" {
		c.Response().SetHeader("Content-Type", contentType)
	}
	c.Response().SetHeader("Cache-Control", cacheControl)

	content, err := io.ReadAll(file)
	if err != nil {
		logger.LogErr(err, "failed to read static file", "path", path)
		c.SetStatus(http.StatusInternalServerError)
		return nil
	}

	return c.Bytes(content)
}

// getContentType returns the content type of the embedded file types
func getContentType(path string) string {
	switch {
	case strings.HasSuffix(path, ".css"):
		return "text/css"
	case strings.HasSuffix(path, ".js"):
		return "application/javascript"
	case strings.HasSuffix(path, ".json"):
		return "application/json"
	default:
		return ""
	}
}
