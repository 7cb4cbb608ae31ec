package web

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dhruvywuvy/ursa-minor/internal/constellation"
	"github.com/dhruvywuvy/ursa-minor/internal/portfolio"
)

func (s *Server) routes(r *gin.Engine) {
	r.Static("/static", s.cfg.StaticDir)

	// Home page route
	r.GET("/", s.index)

	// Single experience card, for fragment swaps
	r.GET("/experiences/:index", s.experience)

	r.GET("/logos/:file", s.logo)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if s.cfg.Metrics {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

func (s *Server) index(c *gin.Context) {
	s.metrics.RecordPageRender("index.html")
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile": s.profile,
		"socials": s.socials,
		"rel":     portfolio.LinkRel,
		"width":   constellation.ContainerWidth,
		"height":  constellation.ContainerHeight,
		"lines":   constellation.Lines(s.layer.Stars()),
		"stars":   s.starViews(),
	})
}

func (s *Server) experience(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil || i < 0 || i >= s.layer.Len() {
		c.JSON(http.StatusNotFound, gin.H{"error": "experience not found"})
		return
	}
	s.metrics.RecordPageRender("experience.html")
	c.HTML(http.StatusOK, "experience.html", s.card(i, false))
}

// logo serves a company logo, or redirects to the placeholder when the
// file is missing.
func (s *Server) logo(c *gin.Context) {
	name := filepath.Base(filepath.Clean("/" + c.Param("file")))
	file := filepath.Join(s.cfg.LogoDir, name)

	if info, err := os.Stat(file); err != nil || info.IsDir() {
		label := name
		if _, known := s.logos[name]; !known {
			label = "unknown"
		}
		s.metrics.RecordLogoFallback(label)
		s.log.Debug().Str("logo", name).Msg("logo missing, serving placeholder")
		c.Redirect(http.StatusFound, portfolio.PlaceholderLogo)
		return
	}
	c.File(file)
}

func logoName(ref string) string {
	return path.Base(ref)
}
