package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// webUI is the compiled single page app: an index page plus its bundles.
type webUI struct {
	index   string
	assets  string
	favicon string
}

// findWebUI inspects dir and reports which parts of a build are present.
func findWebUI(dir string) (webUI, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return webUI{}, err
	}
	if !info.IsDir() {
		return webUI{}, &os.PathError{Op: "stat", Path: dir, Err: os.ErrInvalid}
	}

	var ui webUI
	if exists(filepath.Join(dir, "index.html")) {
		ui.index = filepath.Join(dir, "index.html")
	}
	if exists(filepath.Join(dir, "assets")) {
		ui.assets = filepath.Join(dir, "assets")
	}
	if exists(filepath.Join(dir, "favicon.ico")) {
		ui.favicon = filepath.Join(dir, "favicon.ico")
	}
	return ui, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mountStatic serves the board list at "/", each board page at
// "/board/:id" and the UI bundles. "/docs" always leads to the API docs.
func (s *Server) mountStatic() {
	s.Engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/swagger/index.html")
	})

	dir := s.Config.StaticDir
	if dir == "" {
		s.log.Warn("static directory not configured; API only mode")
		return
	}
	ui, err := findWebUI(dir)
	if err != nil {
		s.log.WithField("path", dir).WithError(err).Warn("static directory missing")
		return
	}

	if ui.assets != "" {
		s.Engine.StaticFS("/assets", gin.Dir(ui.assets, false))
	}
	if ui.favicon != "" {
		s.Engine.StaticFile("/favicon.ico", ui.favicon)
	}
	if ui.index == "" {
		s.log.WithField("path", dir).Warn("index.html not found")
		return
	}

	page := func(c *gin.Context) { c.File(ui.index) }
	s.Engine.GET("/", page)
	s.Engine.GET("/board/:id", s.boardPage(ui.index))
	s.Engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
			return
		}
		page(c)
	})
}

// boardPage serves the app for a board that exists and sends the browser
// back to the board list otherwise.
func (s *Server) boardPage(index string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := s.Boards.GetByID(c.Request.Context(), c.Param("id")); err != nil {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.File(index)
	}
}
