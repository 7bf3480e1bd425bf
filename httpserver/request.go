package httpserver

import (
	"moviehub/movie"
)

type SearchMoviesRequest struct {
	Title string `query:"title"`
	Actor string `query:"actor"`
}

func (r SearchMoviesRequest) ToFilter() movie.SearchFilter {
	return movie.SearchFilter{Title: r.Title, Actor: r.Actor}
}

type UpdateMovieRequest struct {
	Title string `query:"title" validate:"required"`
}

type ReviewersRequest struct {
	Title string `query:"title" validate:"required"`
}

type ReviewerRequest struct {
	Name string `query:"name" validate:"required"`
}
