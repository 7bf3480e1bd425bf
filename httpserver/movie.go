package httpserver

import (
	"net/http"

	"moviehub/errs"
	"moviehub/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.GET("/", s.handleListMovies)
	g.GET("/search", s.handleSearchMovies)
	g.PUT("/update", s.handleUpdateMovie)
	g.GET("/common_movies", s.handleCommonMovies)
	g.GET("/reviewers-who-rated", s.handleReviewers)
	g.GET("/reviewers-ratings", s.handleReviewerRatings)
}

func (s *Server) movieService() (movie.Service, error) {
	if s.MovieService == nil {
		return nil, errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}
	return s.MovieService, nil
}

// handleListMovies godoc
// @Summary List Movies
// @Description First 4 movies of the document store
// @Tags mongodb
// @Produce json
// @Success 200 {array} movie.Movie
// @Failure 500 {object} ErrorResponse
// @Router /movies/ [get]
func (s *Server) handleListMovies(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	movies, err := svc.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return RespondSuccess(c, http.StatusOK, movies)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Movies whose title equals title OR whose cast contains actor
// @Tags mongodb
// @Produce json
// @Param title query string false "Exact title"
// @Param actor query string false "Cast member"
// @Success 200 {array} movie.Movie
// @Failure 404 {object} ErrorResponse
// @Router /movies/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	var req SearchMoviesRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	movies, err := svc.SearchMovies(c.Request().Context(), req.ToFilter())
	if err != nil {
		return err
	}

	return RespondSuccess(c, http.StatusOK, movies)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Set the non-null fields of the body on the movie with the given title
// @Tags mongodb
// @Accept json
// @Produce json
// @Param title query string true "Title of the movie to update"
// @Param movie body movie.MovieUpdate true "Fields to set"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/update [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	var req UpdateMovieRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var update movie.MovieUpdate
	if err := c.Bind(&update); err != nil {
		return err
	}

	m, err := svc.UpdateMovie(c.Request().Context(), req.Title, update)
	if err != nil {
		return err
	}

	return RespondSuccess(c, http.StatusOK, m)
}

// handleCommonMovies godoc
// @Summary Common Movies
// @Description Titles present in both MongoDB and Neo4j
// @Tags mongodb,neo4j
// @Produce json
// @Success 200 {object} movie.CommonMovies
// @Failure 500 {object} ErrorResponse
// @Router /movies/common_movies [get]
func (s *Server) handleCommonMovies(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	common, err := svc.CommonMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return RespondSuccess(c, http.StatusOK, common)
}

// handleReviewers godoc
// @Summary Reviewers of a Movie
// @Description Names of the people who reviewed the movie
// @Tags neo4j
// @Produce json
// @Param title query string true "Movie title"
// @Success 200 {object} ReviewersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/reviewers-who-rated [get]
func (s *Server) handleReviewers(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	var req ReviewersRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	users, err := svc.Reviewers(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}

	return RespondSuccess(c, http.StatusOK, ReviewersResponse{Users: users})
}

// handleReviewerRatings godoc
// @Summary Reviewer Ratings
// @Description Number and titles of the movies a person reviewed
// @Tags neo4j
// @Produce json
// @Param name query string true "Person name"
// @Success 200 {object} movie.Reviewer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/reviewers-ratings [get]
func (s *Server) handleReviewerRatings(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	var req ReviewerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reviewer, err := svc.ReviewerDetail(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return RespondSuccess(c, http.StatusOK, reviewer)
}
