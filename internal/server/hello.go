package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HelloMessage is the fixed greeting the heartbeat job verifies.
const HelloMessage = "Hello, CRM!"

func (s *Server) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"hello": HelloMessage}})
}
