package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"student-assist/internal/service"
)

type flashcardRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

func (s *Server) handleCreateFlashcard(c *gin.Context) {
	var req flashcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and answer required"})
		return
	}

	card, err := s.study.AddFlashcard(c.Request.Context(), currentUser(c), req.Question, req.Answer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (s *Server) handleListFlashcards(c *gin.Context) {
	cards, err := s.study.ListFlashcards(c.Request.Context(), currentUser(c))
	if err != nil {
		s.log.WithError(err).Error("list flashcards failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, cards)
}

type quizRequest struct {
	Title     string `json:"title" binding:"required"`
	Questions string `json:"questions"`
}

func (s *Server) handleCreateQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	quiz, err := s.study.AddQuiz(c.Request.Context(), currentUser(c), req.Title, req.Questions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

func (s *Server) handleListQuizzes(c *gin.Context) {
	quizzes, err := s.study.ListQuizzes(c.Request.Context(), currentUser(c))
	if err != nil {
		s.log.WithError(err).Error("list quizzes failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

type goalRequest struct {
	Goal        string `json:"goal" binding:"required"`
	TargetValue int    `json:"target_value" binding:"required"`
}

func (s *Server) handleCreateGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal and target_value required"})
		return
	}

	goal, err := s.study.AddGoal(c.Request.Context(), currentUser(c), req.Goal, req.TargetValue)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (s *Server) handleListGoals(c *gin.Context) {
	goals, err := s.study.ListGoals(c.Request.Context(), currentUser(c))
	if err != nil {
		s.log.WithError(err).Error("list goals failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

type goalProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

func (s *Server) handleGoalProgress(c *gin.Context) {
	goalID, ok := parseID(c)
	if !ok {
		return
	}
	var req goalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress required"})
		return
	}

	goal, err := s.study.UpdateGoalProgress(c.Request.Context(), currentUser(c), goalID, *req.Progress)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}
	if err != nil {
		s.log.WithError(err).Error("update goal progress failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

type gpaRequest struct {
	Grades  []float64 `json:"grades" binding:"required"`
	Credits []float64 `json:"credits" binding:"required"`
}

func (s *Server) handleGPA(c *gin.Context) {
	var req gpaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grades and credits required"})
		return
	}

	gpa, err := service.ComputeGPA(req.Grades, req.Credits)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gpa": gpa})
}
