package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	assistantdomain "github.com/shoplight/shoplight/internal/assistant/domain"
)

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) HandleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorPayload{
			Error:   "Bad Request",
			Message: "Message is required",
		})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, errorPayload{
			Error:   "Bad Request",
			Message: "Message is required",
		})
		return
	}

	resp, err := s.assistantSvc.Chat(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, assistantdomain.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, errorPayload{
				Error:   "Bad Request",
				Message: "Message is required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, errorPayload{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
