// Package httpapi exposes the service over a JSON HTTP API.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"student-assist/internal/auth"
	"student-assist/internal/service"
)

// Server wires services into the gin router.
type Server struct {
	log       *logrus.Logger
	tokens    *auth.Tokens
	authSvc   *service.AuthService
	tasks     *service.TaskService
	notes     *service.NoteService
	study     *service.StudyService
	timetable *service.TimetableService
	reminders *service.ReminderService
	router    *gin.Engine
}

// NewServer builds the router. Register, login, health and metrics are
// open; everything else requires a bearer token.
func NewServer(
	log *logrus.Logger,
	tokens *auth.Tokens,
	authSvc *service.AuthService,
	tasks *service.TaskService,
	notes *service.NoteService,
	study *service.StudyService,
	timetable *service.TimetableService,
	reminders *service.ReminderService,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		log:       log,
		tokens:    tokens,
		authSvc:   authSvc,
		tasks:     tasks,
		notes:     notes,
		study:     study,
		timetable: timetable,
		reminders: reminders,
		router:    router,
	}

	router.Use(s.requestLogger(), metricsMiddleware())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", metricsHandler())

	v1 := router.Group("/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", s.handleRegister)
			authGroup.POST("/login", s.handleLogin)
		}

		protected := v1.Group("", s.authRequired())
		{
			protected.GET("/tasks", s.handleListTasks)
			protected.POST("/tasks", s.handleCreateTask)
			protected.PATCH("/tasks/:id", s.handleToggleTask)
			protected.DELETE("/tasks/:id", s.handleDeleteTask)
			protected.GET("/tasks/reminders", s.handleUpcomingReminders)
			protected.GET("/tasks/export/calendar", s.handleExportCalendar)

			protected.GET("/notes", s.handleListNotes)
			protected.POST("/notes", s.handleCreateNote)
			protected.PUT("/notes/:id", s.handleUpdateNote)
			protected.DELETE("/notes/:id", s.handleDeleteNote)
			protected.GET("/notes/:id/attachment", s.handleDownloadAttachment)
			protected.GET("/notes/:id/export/pdf", s.handleExportNote)
			protected.GET("/notes/export/pdf", s.handleExportNotes)

			protected.GET("/flashcards", s.handleListFlashcards)
			protected.POST("/flashcards", s.handleCreateFlashcard)
			protected.GET("/quizzes", s.handleListQuizzes)
			protected.POST("/quizzes", s.handleCreateQuiz)
			protected.GET("/goals", s.handleListGoals)
			protected.POST("/goals", s.handleCreateGoal)
			protected.PATCH("/goals/:id/progress", s.handleGoalProgress)

			protected.GET("/timetable", s.handleGetTimetable)
			protected.PUT("/timetable", s.handlePutTimetable)

			protected.POST("/gpa", s.handleGPA)
			protected.POST("/telegram/link", s.handleLinkTelegram)
		}
	}

	return s
}

// Run starts the HTTP server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
