package movie

import "time"

// MovieUpdate is a partial update of a movie document. Only non-nil fields are
// written; nil means absent or null in the request.
type MovieUpdate struct {
	Plot             *string    `json:"plot"`
	Genres           *[]string  `json:"genres"`
	Runtime          *int       `json:"runtime"`
	Cast             *[]string  `json:"cast"`
	Poster           *string    `json:"poster"`
	Title            *string    `json:"title"`
	FullPlot         *string    `json:"fullplot"`
	Languages        *[]string  `json:"languages"`
	Released         *time.Time `json:"released"`
	Directors        *[]string  `json:"directors"`
	Rated            *string    `json:"rated"`
	Awards           *Awards    `json:"awards"`
	LastUpdated      *string    `json:"lastupdated"`
	Year             *int       `json:"year"`
	IMDb             *IMDb      `json:"imdb"`
	Countries        *[]string  `json:"countries"`
	Type             *string    `json:"type"`
	Tomatoes         *Tomatoes  `json:"tomatoes"`
	NumMflixComments *int       `json:"num_mflix_comments"`
	Writers          *[]string  `json:"writers"`
}

// Field is one document field to be set, keyed by its stored name.
type Field struct {
	Name  string
	Value interface{}
}

// Fields lists the fields present in the update, in document order. Presence
// is decided per field so zero values such as 0 or "" are still written.
func (u MovieUpdate) Fields() []Field {
	var fields []Field
	set := func(name string, value interface{}) {
		fields = append(fields, Field{Name: name, Value: value})
	}

	if u.Plot != nil {
		set("plot", *u.Plot)
	}
	if u.Genres != nil {
		set("genres", *u.Genres)
	}
	if u.Runtime != nil {
		set("runtime", *u.Runtime)
	}
	if u.Cast != nil {
		set("cast", *u.Cast)
	}
	if u.Poster != nil {
		set("poster", *u.Poster)
	}
	if u.Title != nil {
		set("title", *u.Title)
	}
	if u.FullPlot != nil {
		set("fullplot", *u.FullPlot)
	}
	if u.Languages != nil {
		set("languages", *u.Languages)
	}
	if u.Released != nil {
		set("released", *u.Released)
	}
	if u.Directors != nil {
		set("directors", *u.Directors)
	}
	if u.Rated != nil {
		set("rated", *u.Rated)
	}
	if u.Awards != nil {
		set("awards", u.Awards)
	}
	if u.LastUpdated != nil {
		set("lastupdated", *u.LastUpdated)
	}
	if u.Year != nil {
		set("year", *u.Year)
	}
	if u.IMDb != nil {
		set("imdb", u.IMDb)
	}
	if u.Countries != nil {
		set("countries", *u.Countries)
	}
	if u.Type != nil {
		set("type", *u.Type)
	}
	if u.Tomatoes != nil {
		set("tomatoes", u.Tomatoes)
	}
	if u.NumMflixComments != nil {
		set("num_mflix_comments", *u.NumMflixComments)
	}
	if u.Writers != nil {
		set("writers", *u.Writers)
	}

	return fields
}
