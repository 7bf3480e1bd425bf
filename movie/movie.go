package movie

import (
	"time"

	"moviehub/errs"
)

var (
	ErrTitleRequired = errs.Errorf(errs.EINVALID, "title is required")
	ErrNameRequired  = errs.Errorf(errs.EINVALID, "name is required")
	ErrNoMatches     = errs.Errorf(errs.ENOTFOUND, "No movies found with the given criteria")
)

// ListLimit is the number of documents returned by ListMovies.
const ListLimit = 4

type Awards struct {
	Wins        *int    `bson:"wins,omitempty" json:"wins,omitempty"`
	Nominations *int    `bson:"nominations,omitempty" json:"nominations,omitempty"`
	Text        *string `bson:"text,omitempty" json:"text,omitempty"`
}

type IMDb struct {
	Rating *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Votes  *int     `bson:"votes,omitempty" json:"votes,omitempty"`
	ID     *int     `bson:"id,omitempty" json:"id,omitempty"`
}

// Score is the rating block shared by the viewer and critic tomatoes entries.
type Score struct {
	Rating     *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	NumReviews *int     `bson:"numReviews,omitempty" json:"numReviews,omitempty"`
	Meter      *int     `bson:"meter,omitempty" json:"meter,omitempty"`
}

type Tomatoes struct {
	Viewer      *Score     `bson:"viewer,omitempty" json:"viewer,omitempty"`
	Fresh       *int       `bson:"fresh,omitempty" json:"fresh,omitempty"`
	Critic      *Score     `bson:"critic,omitempty" json:"critic,omitempty"`
	Rotten      *int       `bson:"rotten,omitempty" json:"rotten,omitempty"`
	LastUpdated *time.Time `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

// Movie is a document from the movies collection. Every field is optional and
// the store identifier is never carried.
type Movie struct {
	Plot             *string    `bson:"plot,omitempty" json:"plot,omitempty"`
	Genres           []string   `bson:"genres,omitempty" json:"genres,omitempty"`
	Runtime          *int       `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Cast             []string   `bson:"cast,omitempty" json:"cast,omitempty"`
	Poster           *string    `bson:"poster,omitempty" json:"poster,omitempty"`
	Title            *string    `bson:"title,omitempty" json:"title,omitempty"`
	FullPlot         *string    `bson:"fullplot,omitempty" json:"fullplot,omitempty"`
	Languages        []string   `bson:"languages,omitempty" json:"languages,omitempty"`
	Released         *time.Time `bson:"released,omitempty" json:"released,omitempty"`
	Directors        []string   `bson:"directors,omitempty" json:"directors,omitempty"`
	Rated            *string    `bson:"rated,omitempty" json:"rated,omitempty"`
	Awards           *Awards    `bson:"awards,omitempty" json:"awards,omitempty"`
	LastUpdated      *string    `bson:"lastupdated,omitempty" json:"lastupdated,omitempty"`
	Year             *int       `bson:"year,omitempty" json:"year,omitempty"`
	IMDb             *IMDb      `bson:"imdb,omitempty" json:"imdb,omitempty"`
	Countries        []string   `bson:"countries,omitempty" json:"countries,omitempty"`
	Type             *string    `bson:"type,omitempty" json:"type,omitempty"`
	Tomatoes         *Tomatoes  `bson:"tomatoes,omitempty" json:"tomatoes,omitempty"`
	NumMflixComments *int       `bson:"num_mflix_comments,omitempty" json:"num_mflix_comments,omitempty"`
	Writers          []string   `bson:"writers,omitempty" json:"writers,omitempty"`
}

// SearchFilter selects movies whose title equals Title OR whose cast contains
// Actor. Empty values are ignored; an empty filter matches everything.
type SearchFilter struct {
	Title string
	Actor string
}

func (f SearchFilter) IsEmpty() bool {
	return f.Title == "" && f.Actor == ""
}

// Reviewer is a person of the graph together with the movies they reviewed.
type Reviewer struct {
	Name             string   `json:"user_name"`
	RatedMoviesCount int64    `json:"rated_movies_count"`
	RatedMovies      []string `json:"rated_movies"`
}

// CommonMovies is the intersection of the titles known to both stores.
type CommonMovies struct {
	Count  int      `json:"common_movies_count"`
	Titles []string `json:"common_movies"`
}

func requireTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	return nil
}

// TitleNotFound is the error returned when no document carries title.
func TitleNotFound(title string) error {
	return errs.Errorf(errs.ENOTFOUND, "Movie with title %s not found", title)
}
