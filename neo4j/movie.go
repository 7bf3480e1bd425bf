package neo4j

import (
	"context"

	"moviehub/errs"
	"moviehub/movie"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const (
	titlesQuery = `MATCH (m:Movie) RETURN m.title AS title`

	reviewersQuery = `
MATCH (u:Person)-[r:REVIEWED]->(m:Movie {title: $title})
RETURN u.name AS user_name`

	reviewerQuery = `
MATCH (u:Person {name: $name})-[r:REVIEWED]->(m:Movie)
RETURN u.name AS user_name, count(m) AS rated_movies_count, collect(m.title) AS rated_movies`

	mergeMoviesQuery = `
UNWIND $titles AS title
MERGE (:Movie {title: title})`
)

// Indexes backs the title and name lookups above.
var Indexes = []string{
	`CREATE INDEX movie_title IF NOT EXISTS FOR (m:Movie) ON (m.title)`,
	`CREATE INDEX person_name IF NOT EXISTS FOR (p:Person) ON (p.name)`,
}

// MovieRepository implements movie.GraphStore on the Person/Movie graph.
type MovieRepository struct {
	driver   neo4j.DriverWithContext
	database string
}

func NewMovieRepository(driver neo4j.DriverWithContext, database string) *MovieRepository {
	return &MovieRepository{driver: driver, database: database}
}

// Titles returns the title of every Movie node. Nodes without title are skipped.
func (r *MovieRepository) Titles(ctx context.Context) ([]string, error) {
	res, err := r.read(ctx, titlesQuery, nil)
	if err != nil {
		return nil, errs.Errorf(errs.EINTERNAL, "neo4j: movie titles: %v", err)
	}
	titles, err := stringColumn(res.Records, "title")
	if err != nil {
		return nil, errs.Errorf(errs.EINTERNAL, "neo4j: movie titles: %v", err)
	}
	return titles, nil
}

// ReviewersOf returns the names of the people who reviewed title, one per
// REVIEWED relationship, in the order the server returns them.
func (r *MovieRepository) ReviewersOf(ctx context.Context, title string) ([]string, error) {
	res, err := r.read(ctx, reviewersQuery, map[string]any{"title": title})
	if err != nil {
		return nil, errs.Errorf(errs.EINTERNAL, "neo4j: reviewers: %v", err)
	}
	names, err := stringColumn(res.Records, "user_name")
	if err != nil {
		return nil, errs.Errorf(errs.EINTERNAL, "neo4j: reviewers: %v", err)
	}
	return names, nil
}

func (r *MovieRepository) ReviewerDetail(ctx context.Context, name string) (movie.Reviewer, bool, error) {
	res, err := r.read(ctx, reviewerQuery, map[string]any{"name": name})
	if err != nil {
		return movie.Reviewer{}, false, errs.Errorf(errs.EINTERNAL, "neo4j: reviewer: %v", err)
	}
	if len(res.Records) == 0 {
		return movie.Reviewer{}, false, nil
	}
	reviewer, err := reviewerFrom(res.Records[0])
	if err != nil {
		return movie.Reviewer{}, false, errs.Errorf(errs.EINTERNAL, "neo4j: reviewer: %v", err)
	}
	return reviewer, true, nil
}

// MergeMovies makes sure a Movie node exists for every title.
func (r *MovieRepository) MergeMovies(ctx context.Context, titles []string) error {
	_, err := neo4j.ExecuteQuery(ctx, r.driver, mergeMoviesQuery,
		map[string]any{"titles": titles},
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(r.database),
	)
	if err != nil {
		return errs.Errorf(errs.EINTERNAL, "neo4j: merge movies: %v", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes when they are missing.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	for _, stmt := range Indexes {
		_, err := neo4j.ExecuteQuery(ctx, r.driver, stmt, nil,
			neo4j.EagerResultTransformer,
			neo4j.ExecuteQueryWithDatabase(r.database),
		)
		if err != nil {
			return errs.Errorf(errs.EINTERNAL, "neo4j: create index: %v", err)
		}
	}
	return nil
}

func (r *MovieRepository) read(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	return neo4j.ExecuteQuery(ctx, r.driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(r.database),
		neo4j.ExecuteQueryWithReadersRouting(),
	)
}
