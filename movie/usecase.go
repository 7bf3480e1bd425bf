package movie

import (
	"context"
	"sort"

	"moviehub/errs"

	"golang.org/x/sync/errgroup"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	SearchMovies(ctx context.Context, f SearchFilter) ([]Movie, error)
	UpdateMovie(ctx context.Context, title string, u MovieUpdate) (Movie, error)
	CommonMovies(ctx context.Context) (CommonMovies, error)
	Reviewers(ctx context.Context, title string) ([]string, error)
	ReviewerDetail(ctx context.Context, name string) (Reviewer, error)
}

// DocumentStore is the movie collection of the document database.
type DocumentStore interface {
	List(ctx context.Context, limit int64) ([]Movie, error)
	Find(ctx context.Context, f SearchFilter) ([]Movie, error)
	// FindByTitle returns an ENOTFOUND error when no document matches.
	FindByTitle(ctx context.Context, title string) (Movie, error)
	// UpdateByTitle sets fields on the first document matching title and
	// reports how many documents were modified.
	UpdateByTitle(ctx context.Context, title string, fields []Field) (int64, error)
	Titles(ctx context.Context) ([]string, error)
}

// GraphStore is the Person/Movie/REVIEWED graph.
type GraphStore interface {
	Titles(ctx context.Context) ([]string, error)
	ReviewersOf(ctx context.Context, title string) ([]string, error)
	// ReviewerDetail returns false when no person with that name reviewed anything.
	ReviewerDetail(ctx context.Context, name string) (Reviewer, bool, error)
}

type Usecase struct {
	docs  DocumentStore
	graph GraphStore
}

func NewUsecase(docs DocumentStore, graph GraphStore) *Usecase {
	return &Usecase{docs: docs, graph: graph}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.docs.List(ctx, ListLimit)
}

func (uc *Usecase) SearchMovies(ctx context.Context, f SearchFilter) ([]Movie, error) {
	movies, err := uc.docs.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrNoMatches
	}
	return movies, nil
}

// UpdateMovie applies the present fields of u to the movie named title and
// returns the document as stored afterwards. An update without fields only
// reads the movie back.
func (uc *Usecase) UpdateMovie(ctx context.Context, title string, u MovieUpdate) (Movie, error) {
	if err := requireTitle(title); err != nil {
		return Movie{}, err
	}

	if fields := u.Fields(); len(fields) > 0 {
		modified, err := uc.docs.UpdateByTitle(ctx, title, fields)
		if err != nil {
			return Movie{}, err
		}
		if modified == 0 {
			return Movie{}, TitleNotFound(title)
		}
	}

	return uc.docs.FindByTitle(ctx, title)
}

// CommonMovies intersects the distinct titles of both stores. The two scans
// run concurrently and the first failure aborts the other.
func (uc *Usecase) CommonMovies(ctx context.Context) (CommonMovies, error) {
	var docTitles, graphTitles []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		titles, err := uc.docs.Titles(gctx)
		docTitles = titles
		return err
	})
	g.Go(func() error {
		titles, err := uc.graph.Titles(gctx)
		graphTitles = titles
		return err
	})
	if err := g.Wait(); err != nil {
		return CommonMovies{}, err
	}

	common := Intersect(docTitles, graphTitles)
	return CommonMovies{Count: len(common), Titles: common}, nil
}

func (uc *Usecase) Reviewers(ctx context.Context, title string) ([]string, error) {
	if err := requireTitle(title); err != nil {
		return nil, err
	}

	users, err := uc.graph.ReviewersOf(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errs.Errorf(errs.ENOTFOUND, "No person reviewed the movie titled '%s'", title)
	}
	return users, nil
}

func (uc *Usecase) ReviewerDetail(ctx context.Context, name string) (Reviewer, error) {
	if name == "" {
		return Reviewer{}, ErrNameRequired
	}

	r, ok, err := uc.graph.ReviewerDetail(ctx, name)
	if err != nil {
		return Reviewer{}, err
	}
	if !ok {
		return Reviewer{}, errs.Errorf(errs.ENOTFOUND, "User named '%s' not found", name)
	}
	return r, nil
}

// Intersect returns the sorted set of values present in both a and b.
// Duplicates within either input collapse to a single element.
func Intersect(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, t := range a {
		seen[t] = struct{}{}
	}

	common := make([]string, 0)
	for _, t := range b {
		if _, ok := seen[t]; ok {
			common = append(common, t)
			delete(seen, t)
		}
	}
	sort.Strings(common)
	return common
}
