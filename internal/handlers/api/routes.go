// Package api serves the quiz over HTTP/JSON.
package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
	"github.com/KirkDiggler/character-forge/internal/services/quiz"
)

// Config defines server dependencies.
type Config struct {
	QuizService    quiz.Service
	AllowedOrigins []string
}

// Server wires HTTP handlers to the quiz service.
type Server struct {
	quiz           quiz.Service
	allowedOrigins []string
}

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.QuizService == nil {
		return nil, errors.New("quiz service required")
	}
	return &Server{
		quiz:           cfg.QuizService,
		allowedOrigins: cfg.AllowedOrigins,
	}, nil
}

// Router configures gin routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	corsCfg := cors.DefaultConfig()
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/questions", s.handleQuestions)
		api.POST("/sessions", s.handleStartSession)
		api.GET("/sessions/:id", s.handleGetSession)
		api.GET("/sessions/:id/question", s.handleCurrentQuestion)
		api.POST("/sessions/:id/answers", s.handleAnswer)
		api.POST("/sessions/:id/character", s.handleFinish)
		api.GET("/owners/:owner/sessions", s.handleListSessions)
		api.GET("/owners/:owner/characters", s.handleListCharacters)
		api.GET("/characters/:id", s.handleGetCharacter)
		api.POST("/synthesize", s.handleSynthesize)
		api.POST("/demo", s.handleDemo)
	}

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"status": c.Writer.Status(),
		}).Debug("http request")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, QuestionsResponse{
		Items: s.quiz.Questions(),
		Total: s.quiz.Questions().Len(),
	})
}

func (s *Server) handleStartSession(c *gin.Context) {
	var req StartSessionRequest
	if !s.bind(c, &req) {
		return
	}

	session, err := s.quiz.StartSession(c.Request.Context(), req.OwnerID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *Server) handleGetSession(c *gin.Context) {
	session, err := s.quiz.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleCurrentQuestion(c *gin.Context) {
	view, err := s.quiz.CurrentQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleAnswer(c *gin.Context) {
	var req AnswerRequest
	if !s.bind(c, &req) {
		return
	}

	result, err := s.quiz.Answer(c.Request.Context(), c.Param("id"), req.Choice)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleFinish(c *gin.Context) {
	var req SeedRequest
	if !s.bind(c, &req) {
		return
	}

	char, err := s.quiz.Finish(c.Request.Context(), &quiz.FinishInput{
		SessionID: c.Param("id"),
		Seed:      req.Seed,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (s *Server) handleListSessions(c *gin.Context) {
	sessions, err := s.quiz.ListSessions(c.Request.Context(), c.Param("owner"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionsResponse{Items: sessions, Total: len(sessions)})
}

func (s *Server) handleListCharacters(c *gin.Context) {
	chars, err := s.quiz.ListCharacters(c.Request.Context(), c.Param("owner"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, CharactersResponse{Items: chars, Total: len(chars)})
}

func (s *Server) handleGetCharacter(c *gin.Context) {
	char, err := s.quiz.GetCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (s *Server) handleSynthesize(c *gin.Context) {
	var req SynthesizeRequest
	if !s.bind(c, &req) {
		return
	}

	char, err := s.quiz.Synthesize(c.Request.Context(), &quiz.SynthesizeInput{
		Stats: req.vector(),
		Seed:  req.Seed,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (s *Server) handleDemo(c *gin.Context) {
	var req SeedRequest
	if !s.bind(c, &req) {
		return
	}

	run, err := s.quiz.Demo(c.Request.Context(), req.Seed)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// bind decodes an optional JSON body. An empty body leaves req zero.
func (s *Server) bind(c *gin.Context, req any) bool {
	if c.Request.Body == nil {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  string(dnderr.CodeInvalidArgument),
		})
		return false
	}
	return true
}

func (s *Server) renderError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, ErrorResponse{
		Error: err.Error(),
		Code:  string(dnderr.GetCode(err)),
	})
}

func statusFor(err error) int {
	switch dnderr.GetCode(err) {
	case dnderr.CodeInvalidOption, dnderr.CodeInvalidArgument, dnderr.CodeIncompleteVector:
		return http.StatusBadRequest
	case dnderr.CodeNotFound:
		return http.StatusNotFound
	case dnderr.CodeFailedPrecondition, dnderr.CodeAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
