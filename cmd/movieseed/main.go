package main

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"moviehub/mongodb"
	"moviehub/movie"
	"moviehub/neo4j"
	"moviehub/pkg/config"
)

const (
	defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"
	batchSize           = 500
)

// MovieSink receives each batch of parsed movies.
type MovieSink interface {
	InsertMany(ctx context.Context, movies []movie.Movie) (int, error)
	MergeMovies(ctx context.Context, titles []string) error
}

// stores fans a batch out to the document store and the graph.
type stores struct {
	docs  *mongodb.MovieRepository
	graph *neo4j.MovieRepository
}

func (s stores) InsertMany(ctx context.Context, movies []movie.Movie) (int, error) {
	return s.docs.InsertMany(ctx, movies)
}

func (s stores) MergeMovies(ctx context.Context, titles []string) error {
	return s.graph.MergeMovies(ctx, titles)
}

func main() {
	var (
		csvPath string
		zipURL  string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to movies.csv (skip download)")
	flag.StringVar(&zipURL, "url", defaultMovieLensURL, "MovieLens zip URL")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := mongodb.NewConnection(ctx, mongodb.Options{URI: cfg.Mongo.URI, DBName: cfg.Mongo.DBName})
	if err != nil {
		slog.Error("cannot open mongodb connection", "error", err)
		os.Exit(1)
	}
	defer func() { _ = mongodb.Close(ctx, db) }()

	graph, err := neo4j.NewDriver(ctx, neo4j.Options{
		URI:      cfg.Neo4j.URI,
		User:     cfg.Neo4j.User,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		slog.Error("cannot open neo4j driver", "error", err)
		os.Exit(1)
	}
	defer func() { _ = graph.Close(ctx) }()

	cleanup := func() {}
	if csvPath == "" {
		path, c, err := downloadAndExtract(zipURL)
		if err != nil {
			slog.Error("failed to download dataset", "error", err)
			os.Exit(1)
		}
		csvPath = path
		cleanup = c
	}
	defer cleanup()

	file, err := os.Open(csvPath)
	if err != nil {
		slog.Error("cannot open csv", "error", err)
		os.Exit(1)
	}
	defer file.Close()

	sink := stores{
		docs:  mongodb.NewMovieRepository(db, cfg.Mongo.Collection),
		graph: neo4j.NewMovieRepository(graph, cfg.Neo4j.Database),
	}
	count, err := importMovies(ctx, sink, file, limit)
	if err != nil {
		slog.Error("import failed", "error", err, "rows", count)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count)
}

func downloadAndExtract(zipURL string) (string, func(), error) {
	if zipURL == "" {
		return "", func() {}, errors.New("dataset url is empty")
	}

	tmpDir, err := os.MkdirTemp("", "movielens-")
	if err != nil {
		return "", func() {}, err
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	zipPath := filepath.Join(tmpDir, "dataset.zip")
	if err := downloadFile(zipURL, zipPath); err != nil {
		cleanup()
		return "", func() {}, err
	}

	csvPath, err := extractMoviesCSV(zipPath, tmpDir)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}

	return csvPath, cleanup, nil
}

func downloadFile(url, dest string) error {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url) // nolint: noctx
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func extractMoviesCSV(zipPath, destDir string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, file := range r.File {
		if !strings.HasSuffix(file.Name, "movies.csv") {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		destPath := filepath.Join(destDir, filepath.Base(file.Name))
		out, err := os.Create(destPath)
		if err != nil {
			return "", err
		}

		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return "", err
		}
		if err := out.Close(); err != nil {
			return "", err
		}

		return destPath, nil
	}

	return "", errors.New("movies.csv not found in zip")
}

func importMovies(ctx context.Context, sink MovieSink, r io.Reader, limit int) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idxTitle, idxGenres, err := parseMovieCSVHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	batch := make([]movie.Movie, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := sink.InsertMany(ctx, batch); err != nil {
			return err
		}
		titles := make([]string, len(batch))
		for i, m := range batch {
			titles[i] = *m.Title
		}
		if err := sink.MergeMovies(ctx, titles); err != nil {
			return err
		}
		count += len(batch)
		batch = batch[:0]
		return nil
	}

	read := 0
	for limit <= 0 || read < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}
		m, ok := parseMovieRecord(record, idxTitle, idxGenres)
		if !ok {
			continue
		}
		read++

		batch = append(batch, m)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return count, err
			}
		}
	}

	if err := flush(); err != nil {
		return count, err
	}
	return count, nil
}

func parseMovieCSVHeader(reader *csv.Reader) (int, int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, err
	}

	idxTitle, idxGenres := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			idxTitle = i
		case "genres":
			idxGenres = i
		}
	}
	if idxTitle == -1 || idxGenres == -1 {
		return 0, 0, errors.New("missing required columns in csv header")
	}

	return idxTitle, idxGenres, nil
}

// titleYear matches the release year MovieLens appends to titles, e.g. "Heat (1995)".
var titleYear = regexp.MustCompile(`^(.*\S)\s+\((\d{4})\)$`)

func parseMovieRecord(record []string, idxTitle, idxGenres int) (movie.Movie, bool) {
	if idxTitle >= len(record) || idxGenres >= len(record) {
		return movie.Movie{}, false
	}

	title := strings.TrimSpace(record[idxTitle])
	if title == "" {
		return movie.Movie{}, false
	}

	var m movie.Movie
	if match := titleYear.FindStringSubmatch(title); match != nil {
		title = match[1]
		if year, err := strconv.Atoi(match[2]); err == nil {
			m.Year = &year
		}
	}
	m.Title = &title

	genres := strings.TrimSpace(record[idxGenres])
	if genres != "" && genres != "(no genres listed)" {
		m.Genres = strings.Split(genres, "|")
	}
	return m, true
}
