package web

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gorewood/readmegen/internal/catalog"
	"github.com/gorewood/readmegen/internal/form"
	"github.com/gorewood/readmegen/internal/preview"
	"github.com/gorewood/readmegen/internal/profile"
	"github.com/gorewood/readmegen/internal/readme"
)

// RenderResponse is the body returned by POST /api/render.
type RenderResponse struct {
	Markdown   string               `json:"markdown"`
	Stats      readme.DocumentStats `json:"stats"`
	Completion int                  `json:"completion"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errEmptyBody = errors.New("empty request body")

// bindProfile decodes the request body into a profile, writing a 400 on
// an empty or syntactically invalid body. Mistyped fields are coerced.
func bindProfile(c *gin.Context) (profile.Data, bool) {
	raw, err := c.GetRawData()
	if err == nil && len(bytes.TrimSpace(raw)) == 0 {
		err = errEmptyBody
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid profile JSON: " + err.Error()})
		return profile.Data{}, false
	}

	d, err := profile.Decode(bytes.NewReader(raw), profile.FormatJSON)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid profile JSON: " + err.Error()})
		return profile.Data{}, false
	}
	return d, true
}

// renderOptions reads ?raw= and ?size= query parameters.
func (s *Server) renderOptions(c *gin.Context) (readme.Options, bool) {
	opts := readme.Options{IconSize: s.iconSize}

	if raw := c.Query("raw"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "raw must be a boolean"})
			return opts, false
		}
		opts.Raw = v
	}
	if size := c.Query("size"); size != "" {
		v, err := strconv.Atoi(size)
		if err != nil || v <= 0 || v > 512 {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "size must be an integer between 1 and 512"})
			return opts, false
		}
		opts.IconSize = v
	}
	return opts, true
}

func (s *Server) build(route string, d profile.Data, opts readme.Options) string {
	start := time.Now()
	markdown := s.cache.build(d, opts)
	s.metrics.observeRender(route, time.Since(start).Seconds())
	return markdown
}

func (s *Server) handleRender(c *gin.Context) {
	opts, ok := s.renderOptions(c)
	if !ok {
		return
	}
	d, ok := bindProfile(c)
	if !ok {
		return
	}
	markdown := s.build(c.FullPath(), d, opts)
	c.JSON(http.StatusOK, RenderResponse{
		Markdown:   markdown,
		Stats:      readme.Stats(markdown),
		Completion: profile.Completion(d),
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	opts, ok := s.renderOptions(c)
	if !ok {
		return
	}
	d, ok := bindProfile(c)
	if !ok {
		return
	}
	markdown := s.build(c.FullPath(), d, opts)
	c.Header("Content-Disposition", `attachment; filename="README.md"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}

// handlePreview returns an HTML fragment. Raw HTML is dropped, so the
// markdown form of the README is converted.
func (s *Server) handlePreview(c *gin.Context) {
	d, ok := bindProfile(c)
	if !ok {
		return
	}
	markdown := s.build(c.FullPath(), d, readme.Options{Raw: true})
	fragment, err := preview.Fragment(markdown, false)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fragment))
}

func (s *Server) handleSchema(c *gin.Context) {
	c.JSON(http.StatusOK, form.Describe())
}

func (s *Server) handleSkills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skills": catalog.Skills()})
}

func (s *Server) handleSocials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"socials": catalog.Socials()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cached": s.cache.len()})
}
