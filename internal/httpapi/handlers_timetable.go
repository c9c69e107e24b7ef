package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"student-assist/internal/service"
)

type timetableSlotRequest struct {
	Day     string `json:"day" binding:"required"`
	Slot    string `json:"slot" binding:"required"`
	Subject string `json:"subject"`
}

type putTimetableRequest struct {
	Entries []timetableSlotRequest `json:"entries" binding:"required"`
}

func (s *Server) handleGetTimetable(c *gin.Context) {
	grid, err := s.timetable.Grid(c.Request.Context(), currentUser(c))
	if err != nil {
		s.log.WithError(err).Error("get timetable failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"days":  service.TimetableDays,
		"slots": service.TimetableSlots,
		"grid":  grid,
	})
}

func (s *Server) handlePutTimetable(c *gin.Context) {
	var req putTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entries required"})
		return
	}

	user := currentUser(c)
	for _, entry := range req.Entries {
		if err := s.timetable.SaveSlot(c.Request.Context(), user, entry.Day, entry.Slot, entry.Subject); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"saved": len(req.Entries)})
}
