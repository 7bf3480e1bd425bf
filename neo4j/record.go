package neo4j

import (
	"fmt"

	"moviehub/movie"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// stringColumn collects the non-null string values of key across records.
func stringColumn(records []*neo4j.Record, key string) ([]string, error) {
	values := make([]string, 0, len(records))
	for _, rec := range records {
		v, isNil, err := neo4j.GetRecordValue[string](rec, key)
		if err != nil {
			return nil, err
		}
		if !isNil {
			values = append(values, v)
		}
	}
	return values, nil
}

func reviewerFrom(rec *neo4j.Record) (movie.Reviewer, error) {
	name, _, err := neo4j.GetRecordValue[string](rec, "user_name")
	if err != nil {
		return movie.Reviewer{}, err
	}
	count, _, err := neo4j.GetRecordValue[int64](rec, "rated_movies_count")
	if err != nil {
		return movie.Reviewer{}, err
	}
	raw, _, err := neo4j.GetRecordValue[[]any](rec, "rated_movies")
	if err != nil {
		return movie.Reviewer{}, err
	}

	titles := make([]string, 0, len(raw))
	for _, v := range raw {
		title, ok := v.(string)
		if !ok {
			return movie.Reviewer{}, fmt.Errorf("rated_movies: unexpected %T", v)
		}
		titles = append(titles, title)
	}

	return movie.Reviewer{
		Name:             name,
		RatedMoviesCount: count,
		RatedMovies:      titles,
	}, nil
}
