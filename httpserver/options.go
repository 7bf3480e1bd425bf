package httpserver

import (
	"log/slog"

	"moviehub/movie"
)

type Option func(s *Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

func WithMovieService(svc movie.Service) Option {
	return func(s *Server) {
		s.MovieService = svc
	}
}
