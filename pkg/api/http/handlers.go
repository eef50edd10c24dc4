package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// homePageBody is the exact home page payload clients depend on.
const homePageBody = "Inventory System Home Page"

// handleHome handles home page requests
func (s *Server) handleHome(c *gin.Context) {
	c.String(http.StatusOK, homePageBody)
}
