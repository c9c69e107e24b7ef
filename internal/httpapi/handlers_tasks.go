package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"student-assist/internal/export"
	"student-assist/internal/model"
	"student-assist/internal/service"
)

type createTaskRequest struct {
	Description       string     `json:"description" binding:"required"`
	DueAt             *time.Time `json:"due_at"`
	RemindBeforeHours int        `json:"remind_before_hours"`
}

type toggleTaskRequest struct {
	Done *bool `json:"done" binding:"required"`
}

type taskResponse struct {
	ID                uint       `json:"id"`
	Description       string     `json:"description"`
	DueAt             *time.Time `json:"due_at,omitempty"`
	RemindBeforeHours int        `json:"remind_before_hours"`
	Done              bool       `json:"done"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toTaskResponse(t *model.Task) taskResponse {
	return taskResponse{
		ID:                t.ID,
		Description:       t.Description,
		DueAt:             t.DueAt,
		RemindBeforeHours: t.RemindBeforeHours,
		Done:              t.Done,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context(), currentUser(c))
	if err != nil {
		s.log.WithError(err).Error("list tasks failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]taskResponse, len(tasks))
	for i := range tasks {
		out[i] = toTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), currentUser(c), service.TaskInput{
		Description:       req.Description,
		DueAt:             req.DueAt,
		RemindBeforeHours: req.RemindBeforeHours,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.WithField("task_id", task.ID).Info("task created")
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (s *Server) handleToggleTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}
	var req toggleTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "done flag required"})
		return
	}

	task, err := s.tasks.ToggleTask(c.Request.Context(), currentUser(c), taskID, *req.Done)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		s.log.WithError(err).Error("toggle task failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.tasks.DeleteTask(c.Request.Context(), currentUser(c), taskID); err != nil {
		s.log.WithError(err).Error("delete task failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleUpcomingReminders(c *gin.Context) {
	upcoming, err := s.reminders.Upcoming(c.Request.Context(), currentUser(c), time.Now().UTC())
	if err != nil {
		s.log.WithError(err).Error("plan reminders failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, upcoming)
}

// handleExportCalendar streams the user's tasks as reminders.ics.
func (s *Server) handleExportCalendar(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context(), currentUser(c))
	if err != nil {
		s.log.WithError(err).Error("calendar export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	data, skipped := export.ExportCalendar(tasks)
	if skipped > 0 {
		s.log.WithField("skipped", skipped).Info("calendar export skipped undated tasks")
	}
	c.Header("Content-Disposition", `attachment; filename="reminders.ics"`)
	c.Data(http.StatusOK, "text/calendar", data)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
