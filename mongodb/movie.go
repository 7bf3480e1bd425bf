package mongodb

import (
	"context"
	"errors"

	"moviehub/errs"
	"moviehub/movie"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is the collection holding movie documents.
const DefaultCollection = "movies"

// withoutID keeps the store identifier out of every decoded document.
var withoutID = bson.D{{Key: "_id", Value: 0}}

// MovieRepository implements movie.DocumentStore on a MongoDB collection.
type MovieRepository struct {
	coll *mongo.Collection
}

// NewMovieRepository creates a repository over the named collection of db.
func NewMovieRepository(db *mongo.Database, collection string) *MovieRepository {
	if collection == "" {
		collection = DefaultCollection
	}
	return &MovieRepository{coll: db.Collection(collection)}
}

func (r *MovieRepository) List(ctx context.Context, limit int64) ([]movie.Movie, error) {
	opts := options.Find().SetProjection(withoutID).SetLimit(limit)
	return r.find(ctx, bson.D{}, opts, "list movies")
}

func (r *MovieRepository) Find(ctx context.Context, f movie.SearchFilter) ([]movie.Movie, error) {
	return r.find(ctx, searchQuery(f), options.Find().SetProjection(withoutID), "search movies")
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (movie.Movie, error) {
	var m movie.Movie
	err := r.coll.FindOne(ctx, bson.D{{Key: "title", Value: title}},
		options.FindOne().SetProjection(withoutID)).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return movie.Movie{}, movie.TitleNotFound(title)
	}
	if err != nil {
		return movie.Movie{}, errs.Errorf(errs.EINTERNAL, "mongodb: find movie: %v", err)
	}
	return m, nil
}

func (r *MovieRepository) UpdateByTitle(ctx context.Context, title string, fields []movie.Field) (int64, error) {
	set := make(bson.D, 0, len(fields))
	for _, f := range fields {
		set = append(set, bson.E{Key: f.Name, Value: f.Value})
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "title", Value: title}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		return 0, errs.Errorf(errs.EINTERNAL, "mongodb: update movie: %v", err)
	}
	return res.ModifiedCount, nil
}

// Titles returns the title of every document, skipping documents without one.
func (r *MovieRepository) Titles(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 0}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errs.Errorf(errs.EINTERNAL, "mongodb: movie titles: %v", err)
	}
	defer cursor.Close(ctx)

	var titles []string
	for cursor.Next(ctx) {
		var doc struct {
			Title *string `bson:"title"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, errs.Errorf(errs.EINTERNAL, "mongodb: decode title: %v", err)
		}
		if doc.Title != nil {
			titles = append(titles, *doc.Title)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, errs.Errorf(errs.EINTERNAL, "mongodb: movie titles: %v", err)
	}
	return titles, nil
}

// EnsureIndexes creates the title index used by every lookup.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) (string, error) {
	return r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
}

// InsertMany stores the given movies as new documents.
func (r *MovieRepository) InsertMany(ctx context.Context, movies []movie.Movie) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, len(movies))
	for i := range movies {
		docs[i] = movies[i]
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, errs.Errorf(errs.EINTERNAL, "mongodb: insert movies: %v", err)
	}
	return len(res.InsertedIDs), nil
}

func (r *MovieRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions, op string) ([]movie.Movie, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errs.Errorf(errs.EINTERNAL, "mongodb: %s: %v", op, err)
	}

	movies := make([]movie.Movie, 0)
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, errs.Errorf(errs.EINTERNAL, "mongodb: %s: %v", op, err)
	}
	return movies, nil
}

// searchQuery ORs the title and cast conditions. An empty filter matches all.
func searchQuery(f movie.SearchFilter) bson.D {
	var or bson.A
	if f.Title != "" {
		or = append(or, bson.D{{Key: "title", Value: f.Title}})
	}
	if f.Actor != "" {
		or = append(or, bson.D{{Key: "cast", Value: f.Actor}})
	}
	if len(or) == 0 {
		return bson.D{}
	}
	return bson.D{{Key: "$or", Value: or}}
}
