package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"moviehub/errs"
	"moviehub/httpserver"
	"moviehub/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) SearchMovies(ctx context.Context, f movie.SearchFilter) ([]movie.Movie, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, title string, u movie.MovieUpdate) (movie.Movie, error) {
	args := m.Called(ctx, title, u)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) CommonMovies(ctx context.Context) (movie.CommonMovies, error) {
	args := m.Called(ctx)
	return args.Get(0).(movie.CommonMovies), args.Error(1)
}

func (m *MockMovieService) Reviewers(ctx context.Context, title string) ([]string, error) {
	args := m.Called(ctx, title)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMovieService) ReviewerDetail(ctx context.Context, name string) (movie.Reviewer, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(movie.Reviewer), args.Error(1)
}

func newMovieServer() (*httpserver.Server, *MockMovieService) {
	server := httpserver.Default(testConfig())
	svc := new(MockMovieService)
	server.MovieService = svc
	return server, svc
}

func serve(server *httpserver.Server, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	server.Router.ServeHTTP(recorder, request)
	return recorder
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestListMovies(t *testing.T) {
	t.Run("should return the listed movies", func(t *testing.T) {
		server, svc := newMovieServer()
		movies := []movie.Movie{
			{Title: strPtr("Blacksmith Scene"), Year: intPtr(1893)},
			{Title: strPtr("The Great Train Robbery"), Year: intPtr(1903)},
		}
		svc.On("ListMovies", mock.Anything).Return(movies, nil).Once()

		recorder := serve(server, http.MethodGet, "/movies/", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		var got []movie.Movie
		decodeJSON(t, recorder, &got)
		assert.Equal(t, movies, got)
		assert.NotContains(t, recorder.Body.String(), "_id")
		svc.AssertExpectations(t)
	})

	t.Run("should answer without trailing slash", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("ListMovies", mock.Anything).Return([]movie.Movie{}, nil).Once()

		recorder := serve(server, http.MethodGet, "/movies", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
	})

	t.Run("should return 500 when the store fails", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("ListMovies", mock.Anything).
			Return([]movie.Movie(nil), errs.Errorf(errs.EINTERNAL, "mongodb: list movies: timeout")).Once()

		recorder := serve(server, http.MethodGet, "/movies/", "")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, "mongodb: list movies: timeout", decodeErrorResponse(t, recorder).Detail)
	})
}

func TestSearchMovies(t *testing.T) {
	t.Run("should pass title and actor to the service", func(t *testing.T) {
		server, svc := newMovieServer()
		filter := movie.SearchFilter{Title: "The Matrix", Actor: "Keanu Reeves"}
		movies := []movie.Movie{{Title: strPtr("The Matrix")}}
		svc.On("SearchMovies", mock.Anything, filter).Return(movies, nil).Once()

		query := url.Values{"title": {"The Matrix"}, "actor": {"Keanu Reeves"}}
		recorder := serve(server, http.MethodGet, "/movies/search?"+query.Encode(), "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		var got []movie.Movie
		decodeJSON(t, recorder, &got)
		assert.Equal(t, movies, got)
		svc.AssertExpectations(t)
	})

	t.Run("should search with an empty filter", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("SearchMovies", mock.Anything, movie.SearchFilter{}).Return([]movie.Movie{{}}, nil).Once()

		recorder := serve(server, http.MethodGet, "/movies/search", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		svc.AssertExpectations(t)
	})

	t.Run("should return 404 when nothing matches", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("SearchMovies", mock.Anything, movie.SearchFilter{Title: "Nope"}).
			Return([]movie.Movie(nil), movie.ErrNoMatches).Once()

		recorder := serve(server, http.MethodGet, "/movies/search?title=Nope", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "No movies found with the given criteria", decodeErrorResponse(t, recorder).Detail)
	})
}

func TestUpdateMovie(t *testing.T) {
	t.Run("should update the movie and return it", func(t *testing.T) {
		server, svc := newMovieServer()
		update := movie.MovieUpdate{Year: intPtr(1999), Rated: strPtr("R")}
		updated := movie.Movie{Title: strPtr("The Matrix"), Year: intPtr(1999), Rated: strPtr("R")}
		svc.On("UpdateMovie", mock.Anything, "The Matrix", update).Return(updated, nil).Once()

		recorder := serve(server, http.MethodPut, "/movies/update?title=The+Matrix", `{"year":1999,"rated":"R","plot":null}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var got movie.Movie
		decodeJSON(t, recorder, &got)
		assert.Equal(t, updated, got)
		svc.AssertExpectations(t)
	})

	t.Run("should return 400 when title is missing", func(t *testing.T) {
		server, svc := newMovieServer()

		recorder := serve(server, http.MethodPut, "/movies/update", `{"year":1999}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, decodeErrorResponse(t, recorder).Detail, "title")
		svc.AssertNotCalled(t, "UpdateMovie")
	})

	t.Run("should pass a blank title to the service", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("UpdateMovie", mock.Anything, "  ", movie.MovieUpdate{Year: intPtr(1999)}).
			Return(movie.Movie{}, movie.TitleNotFound("  ")).Once()

		recorder := serve(server, http.MethodPut, "/movies/update?title=%20%20", `{"year":1999}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		svc.AssertExpectations(t)
	})

	t.Run("should return 400 when JSON is malformed", func(t *testing.T) {
		server, svc := newMovieServer()

		recorder := serve(server, http.MethodPut, "/movies/update?title=The+Matrix", `{"year":`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		svc.AssertNotCalled(t, "UpdateMovie")
	})

	t.Run("should return 404 when the title is unknown", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("UpdateMovie", mock.Anything, "Nope", movie.MovieUpdate{Year: intPtr(2000)}).
			Return(movie.Movie{}, movie.TitleNotFound("Nope")).Once()

		recorder := serve(server, http.MethodPut, "/movies/update?title=Nope", `{"year":2000}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Movie with title Nope not found", decodeErrorResponse(t, recorder).Detail)
	})
}

func TestCommonMovies(t *testing.T) {
	t.Run("should return count and titles", func(t *testing.T) {
		server, svc := newMovieServer()
		common := movie.CommonMovies{Count: 2, Titles: []string{"Speed", "The Matrix"}}
		svc.On("CommonMovies", mock.Anything).Return(common, nil).Once()

		recorder := serve(server, http.MethodGet, "/movies/common_movies", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"common_movies_count":2,"common_movies":["Speed","The Matrix"]}`, recorder.Body.String())
	})

	t.Run("should return 500 when a store fails", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("CommonMovies", mock.Anything).
			Return(movie.CommonMovies{}, errs.Errorf(errs.EINTERNAL, "neo4j: movie titles: connection refused")).Once()

		recorder := serve(server, http.MethodGet, "/movies/common_movies", "")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, "neo4j: movie titles: connection refused", decodeErrorResponse(t, recorder).Detail)
	})
}

func TestReviewers(t *testing.T) {
	t.Run("should wrap names in users", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("Reviewers", mock.Anything, "The Replacements").
			Return([]string{"Angela Scope", "Jessica Thompson"}, nil).Once()

		recorder := serve(server, http.MethodGet, "/movies/reviewers-who-rated?title=The+Replacements", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"users":["Angela Scope","Jessica Thompson"]}`, recorder.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("should return 400 when title is missing", func(t *testing.T) {
		server, svc := newMovieServer()

		recorder := serve(server, http.MethodGet, "/movies/reviewers-who-rated", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		svc.AssertNotCalled(t, "Reviewers")
	})

	t.Run("should return 404 when nobody reviewed the movie", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("Reviewers", mock.Anything, "Top Gun").
			Return([]string(nil), errs.Errorf(errs.ENOTFOUND, "No person reviewed the movie titled '%s'", "Top Gun")).Once()

		recorder := serve(server, http.MethodGet, "/movies/reviewers-who-rated?title=Top+Gun", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "No person reviewed the movie titled 'Top Gun'", decodeErrorResponse(t, recorder).Detail)
	})
}

func TestReviewerRatings(t *testing.T) {
	t.Run("should return the reviewer detail", func(t *testing.T) {
		server, svc := newMovieServer()
		reviewer := movie.Reviewer{Name: "Jessica Thompson", RatedMoviesCount: 2, RatedMovies: []string{"Cloud Atlas", "The Replacements"}}
		svc.On("ReviewerDetail", mock.Anything, "Jessica Thompson").Return(reviewer, nil).Once()

		recorder := serve(server, http.MethodGet, "/movies/reviewers-ratings?name=Jessica+Thompson", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t,
			`{"user_name":"Jessica Thompson","rated_movies_count":2,"rated_movies":["Cloud Atlas","The Replacements"]}`,
			recorder.Body.String())
	})

	t.Run("should return 400 when name is missing", func(t *testing.T) {
		server, svc := newMovieServer()

		recorder := serve(server, http.MethodGet, "/movies/reviewers-ratings", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, decodeErrorResponse(t, recorder).Detail, "name")
		svc.AssertNotCalled(t, "ReviewerDetail")
	})

	t.Run("should return 404 for an unknown person", func(t *testing.T) {
		server, svc := newMovieServer()
		svc.On("ReviewerDetail", mock.Anything, "Nobody").
			Return(movie.Reviewer{}, errs.Errorf(errs.ENOTFOUND, "User named '%s' not found", "Nobody")).Once()

		recorder := serve(server, http.MethodGet, "/movies/reviewers-ratings?name=Nobody", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "User named 'Nobody' not found", decodeErrorResponse(t, recorder).Detail)
	})
}

func TestMovieRoutesWithoutService(t *testing.T) {
	server := httpserver.Default(testConfig())

	for _, target := range []string{"/movies/", "/movies/common_movies", "/movies/reviewers-ratings?name=x"} {
		recorder := serve(server, http.MethodGet, target, "")

		assert.Equal(t, http.StatusNotImplemented, recorder.Code, target)
		assert.Equal(t, "movie service not configured", decodeErrorResponse(t, recorder).Detail)
	}
}
