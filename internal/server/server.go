// Package server exposes the pipeline over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"openform/internal/classify"
	"openform/internal/corrector"
	"openform/internal/pipeline"
	"openform/pkg/options"
)

// WordStore persists custom dictionary words. Changes apply to the next
// model build.
type WordStore interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	Ping(ctx context.Context) error
}

type Server struct {
	app      *fiber.App
	pipeline *pipeline.Pipeline
	store    WordStore
	logger   *zap.Logger
	metrics  *metrics
}

// New builds the routes. store may be nil, in which case the custom word
// endpoints answer 503.
func New(p *pipeline.Pipeline, store WordStore, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		pipeline: p,
		store:    store,
		logger:   logger,
		metrics:  newMetrics(reg),
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "openform",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	s.app.Use(s.instrument)

	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := s.app.Group("/api/v1")
	api.Post("/normalize", s.handleNormalize)
	api.Post("/classify", s.handleClassify)
	api.Post("/correct", s.handleCorrect)
	api.Post("/custom-word", s.handleAddWord)
	api.Delete("/custom-word/:word", s.handleRemoveWord)
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func errorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, statusOf(err), err.Error())
}

func statusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (s *Server) instrument(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = statusOf(err)
	}
	route := c.Route().Path
	s.metrics.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
	s.metrics.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	return err
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	redisStatus := "disabled"
	if s.store != nil {
		redisStatus = "ok"
		if err := s.store.Ping(c.UserContext()); err != nil {
			redisStatus = "unavailable"
		}
	}
	return c.JSON(fiber.Map{
		"status":           "ok",
		"dictionary_words": s.pipeline.Model().Lexicon.Size(),
		"table_entries":    s.pipeline.Model().Table.Len(),
		"redis":            redisStatus,
	})
}

type normalizeRequest struct {
	Answer  *string           `json:"answer"`
	Answers []*string         `json:"answers"`
	Options options.Overrides `json:"options"`
}

func (s *Server) handleNormalize(c *fiber.Ctx) error {
	var req normalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid request")
	}
	opts := req.Options.Options()

	if req.Answers != nil {
		results := make([][]string, len(req.Answers))
		for i, a := range req.Answers {
			results[i] = s.pipeline.ProcessAnswer(a, opts...)
			s.metrics.observeTokens(results[i])
		}
		return c.JSON(fiber.Map{"results": results})
	}

	tokens := s.pipeline.ProcessAnswer(req.Answer, opts...)
	s.metrics.observeTokens(tokens)
	return c.JSON(fiber.Map{"tokens": tokens})
}

type classification struct {
	Token    string `json:"token"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
	Reserved bool   `json:"reserved"`
}

func (s *Server) handleClassify(c *fiber.Ctx) error {
	var req struct {
		Tokens []string `json:"tokens"`
	}
	if err := c.BodyParser(&req); err != nil || len(req.Tokens) == 0 {
		return writeError(c, fiber.StatusBadRequest, "tokens are required")
	}
	results := make([]classification, len(req.Tokens))
	for i, t := range req.Tokens {
		tag := classify.Tag(t)
		results[i] = classification{
			Token:    t,
			Category: string(classify.Categorize(t)),
			Tag:      tag,
			Reserved: classify.IsReserved(tag),
		}
	}
	return c.JSON(fiber.Map{"results": results})
}

func (s *Server) handleCorrect(c *fiber.Ctx) error {
	var req struct {
		Words []string `json:"words"`
	}
	if err := c.BodyParser(&req); err != nil || len(req.Words) == 0 {
		return writeError(c, fiber.StatusBadRequest, "words are required")
	}
	sc := s.pipeline.Model().Corrector
	results := make([]corrector.Correction, len(req.Words))
	for i, w := range req.Words {
		results[i] = sc.Explain(strings.ToLower(w))
	}
	return c.JSON(fiber.Map{"results": results})
}

func (s *Server) handleAddWord(c *fiber.Ctx) error {
	if s.store == nil {
		return writeError(c, fiber.StatusServiceUnavailable, "custom dictionary is not configured")
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		return writeError(c, fiber.StatusBadRequest, "invalid request")
	}
	if err := s.store.Add(c.UserContext(), req.Word); err != nil {
		s.logger.Error("add custom word", zap.String("word", req.Word), zap.Error(err))
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleRemoveWord(c *fiber.Ctx) error {
	if s.store == nil {
		return writeError(c, fiber.StatusServiceUnavailable, "custom dictionary is not configured")
	}
	word := strings.TrimSpace(c.Params("word"))
	if word == "" {
		return writeError(c, fiber.StatusBadRequest, "word is required")
	}
	if err := s.store.Remove(c.UserContext(), word); err != nil {
		s.logger.Error("remove custom word", zap.String("word", word), zap.Error(err))
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
