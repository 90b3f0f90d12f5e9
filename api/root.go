package api

import (
	"github.com/Aidin1998/contacts_manager/api/responses"
	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to the Contacts Manager API"

// @Summary Welcome message
// @Tags system
// @Produce json
// @Success 200 {object} responses.MessageResponse
// @Router / [get]
func (s *Server) root(c *gin.Context) error {
	responses.OK(c, responses.MessageResponse{Message: welcomeMessage})
	return nil
}
