package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"poet_ai/config"
	"poet_ai/generator"
)

//go:embed web/*.html
var webFS embed.FS

const errMissingTopic = "Please provide a topic"

type Server struct {
	poet   *generator.Poet
	cfg    config.Config
	router *gin.Engine
	logger *log.Logger
}

// indexData feeds the home page form defaults.
type indexData struct {
	DefaultStyle string
	DefaultLines int
	MaxLines     int
}

type poemResp struct {
	Topic  string `json:"topic"`
	Style  string `json:"style"`
	Poem   string `json:"poem"`
	HTML   string `json:"html"`
	Source string `json:"source"`
}

func New(poet *generator.Poet, cfg config.Config, logger *log.Logger) (*Server, error) {
	if poet == nil {
		return nil, errors.New("poet required")
	}
	if logger == nil {
		logger = log.Default()
	}
	tmpl, err := template.ParseFS(webFS, "web/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.Default()
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if cfg.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		poet:   poet,
		cfg:    cfg,
		router: router,
		logger: logger,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.POST("/api/poem", s.handlePoem)
}

// Routes returns the HTTP handler serving every route.
func (s *Server) Routes() http.Handler {
	return s.router
}

// --- Handlers ---

func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", indexData{
		DefaultStyle: s.cfg.DefaultStyle,
		DefaultLines: s.cfg.DefaultLines,
		MaxLines:     s.cfg.MaxLines,
	})
}

func (s *Server) handlePoem(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	params, err := parsePoemBody(body, s.cfg.DefaultStyle, s.cfg.DefaultLines)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if params.Topic == "" {
		writeError(c, http.StatusBadRequest, errMissingTopic)
		return
	}
	if params.Lines > s.cfg.MaxLines {
		writeError(c, http.StatusBadRequest, fmt.Sprintf("lines must be at most %d", s.cfg.MaxLines))
		return
	}

	ctx := c.Request.Context()
	if s.poet.UsesLLM() && s.cfg.LLM != nil && s.cfg.LLM.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.LLM.TimeoutSeconds)*time.Second)
		defer cancel()
	}
	poem, err := s.poet.Generate(ctx, generator.PoemRequest{
		Topic: params.Topic,
		Style: params.Style,
		Lines: params.Lines,
	})
	if err != nil {
		s.logger.Printf("[server] generate topic=%q failed: %v", params.Topic, err)
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	c.JSON(http.StatusOK, poemResp{
		Topic:  poem.Topic,
		Style:  poem.Style,
		Poem:   poem.Text,
		HTML:   poem.HTML,
		Source: poem.Source,
	})
}

// --- Helpers ---

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
