package movie_test

import (
	"encoding/json"
	"testing"
	"time"

	"moviehub/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieUpdate_Fields(t *testing.T) {
	t.Run("empty update has no fields", func(t *testing.T) {
		assert.Empty(t, movie.MovieUpdate{}.Fields())
	})

	t.Run("null values are treated as absent", func(t *testing.T) {
		var u movie.MovieUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"plot":null,"year":null,"cast":null}`), &u))

		assert.Empty(t, u.Fields())
	})

	t.Run("zero values are kept", func(t *testing.T) {
		var u movie.MovieUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"runtime":0,"rated":"","genres":[]}`), &u))

		assert.Equal(t, []movie.Field{
			{Name: "genres", Value: []string{}},
			{Name: "runtime", Value: 0},
			{Name: "rated", Value: ""},
		}, u.Fields())
	})

	t.Run("nested documents are set whole", func(t *testing.T) {
		released := time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC)
		var u movie.MovieUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"released":"1999-03-31T00:00:00Z","imdb":{"rating":8.7}}`), &u))

		fields := u.Fields()

		require.Len(t, fields, 2)
		assert.Equal(t, "released", fields[0].Name)
		assert.True(t, released.Equal(fields[0].Value.(time.Time)))
		assert.Equal(t, "imdb", fields[1].Name)
		assert.Equal(t, 8.7, *fields[1].Value.(*movie.IMDb).Rating)
	})
}
