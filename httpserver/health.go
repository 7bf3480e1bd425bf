package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const rootMessage = "Movie API - MongoDB & Neo4j"

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

func (s *Server) RegisterRootRoutes() {
	s.Router.GET("/", s.handleRoot)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	return RespondSuccess(c, http.StatusOK, map[string]string{
		"status": "OK",
	})
}

// handleRoot godoc
// @Summary Root
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (s *Server) handleRoot(c echo.Context) error {
	return RespondSuccess(c, http.StatusOK, MessageResponse{Message: rootMessage})
}
