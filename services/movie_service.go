package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

// MovieRepository is the slice of the local movie store the service
// needs.
type MovieRepository interface {
	FindByTMDBID(ctx context.Context, tmdbID int) (*models.Movie, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	Insert(ctx context.Context, movie *models.Movie) error
	UpdateVolatile(ctx context.Context, tmdbID int, fresh *models.Movie) (*models.Movie, error)
	PushReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error
	PullReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error
	List(ctx context.Context, page, limit int) ([]models.Movie, int64, error)
}

// MetadataProvider is the external movie metadata API.
type MetadataProvider interface {
	FetchMovie(ctx context.Context, tmdbID int) (*models.TMDBMovieDetail, error)
	Search(ctx context.Context, query string, page int, withGenres string) (*models.TMDBSearchResponse, error)
	Similar(ctx context.Context, tmdbID int) (*models.TMDBSearchResponse, error)
	Trending(ctx context.Context) (*models.TMDBSearchResponse, error)
}

// MovieService keeps a local cache of provider records: first access
// inserts, later accesses refresh the volatile fields. Records are
// never duplicated; the unique tmdb_id index settles concurrent
// first-access races.
type MovieService struct {
	movies MovieRepository
	tmdb   MetadataProvider
}

func NewMovieService(movies MovieRepository, tmdb MetadataProvider) *MovieService {
	return &MovieService{
		movies: movies,
		tmdb:   tmdb,
	}
}

// GetMovie fetches a fresh record from the provider, then inserts or
// refreshes the local copy. The provider error propagates untouched on
// failure and nothing is written.
func (s *MovieService) GetMovie(ctx context.Context, tmdbID int) (*models.Movie, error) {
	detail, err := s.tmdb.FetchMovie(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	fresh := movieFromTMDB(detail)

	local, err := s.movies.FindByTMDBID(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	if local == nil {
		if err := s.movies.Insert(ctx, fresh); err != nil {
			if err == errs.ErrMovieExists {
				// Lost the first-insert race; the winner's row is there.
				return s.movies.UpdateVolatile(ctx, tmdbID, fresh)
			}
			return nil, err
		}
		return fresh, nil
	}
	return s.movies.UpdateVolatile(ctx, tmdbID, fresh)
}

// ResolveMovie guarantees a local record for the id, fetching from the
// provider only on a miss. Reviews and the watchlist use this cheaper
// path.
func (s *MovieService) ResolveMovie(ctx context.Context, tmdbID int) (*models.Movie, error) {
	local, err := s.movies.FindByTMDBID(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	if local != nil {
		return local, nil
	}

	detail, err := s.tmdb.FetchMovie(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	fresh := movieFromTMDB(detail)
	if err := s.movies.Insert(ctx, fresh); err != nil {
		if err == errs.ErrMovieExists {
			return s.movies.FindByTMDBID(ctx, tmdbID)
		}
		return nil, err
	}
	return fresh, nil
}

// LookupMovie returns the local record or nil without touching the
// provider.
func (s *MovieService) LookupMovie(ctx context.Context, tmdbID int) (*models.Movie, error) {
	return s.movies.FindByTMDBID(ctx, tmdbID)
}

func (s *MovieService) AttachReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error {
	return s.movies.PushReview(ctx, movieID, reviewID)
}

func (s *MovieService) DetachReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error {
	return s.movies.PullReview(ctx, movieID, reviewID)
}

func (s *MovieService) Search(ctx context.Context, query string, page int, withGenres string) (*models.TMDBSearchResponse, error) {
	return s.tmdb.Search(ctx, query, page, withGenres)
}

func (s *MovieService) Similar(ctx context.Context, tmdbID int) (*models.TMDBSearchResponse, error) {
	return s.tmdb.Similar(ctx, tmdbID)
}

func (s *MovieService) Trending(ctx context.Context) (*models.TMDBSearchResponse, error) {
	return s.tmdb.Trending(ctx)
}

func (s *MovieService) ListCached(ctx context.Context, page, limit int) ([]models.Movie, int64, error) {
	return s.movies.List(ctx, page, limit)
}

// keepCrewJobs are the credit roles worth caching.
var keepCrewJobs = map[string]bool{
	"Director":   true,
	"Producer":   true,
	"Screenplay": true,
	"Writer":     true,
}

const maxCachedCast = 10

func movieFromTMDB(detail *models.TMDBMovieDetail) *models.Movie {
	genres := make([]string, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		genres = append(genres, g.Name)
	}

	cast := detail.Credits.Cast
	if len(cast) > maxCachedCast {
		cast = cast[:maxCachedCast]
	}
	crew := make([]models.CrewMember, 0, len(detail.Credits.Crew))
	for _, member := range detail.Credits.Crew {
		if keepCrewJobs[member.Job] {
			crew = append(crew, member)
		}
	}

	now := time.Now()
	return &models.Movie{
		TmdbID:       detail.ID,
		Title:        detail.Title,
		Overview:     detail.Overview,
		PosterPath:   detail.PosterPath,
		BackdropPath: detail.BackdropPath,
		ReleaseDate:  detail.ReleaseDate,
		VoteAverage:  detail.VoteAverage,
		Genres:       genres,
		Budget:       detail.Budget,
		Revenue:      detail.Revenue,
		Runtime:      detail.Runtime,
		Tagline:      detail.Tagline,
		Status:       detail.Status,
		ImdbID:       detail.ImdbID,
		Credits: models.Credits{
			Cast: cast,
			Crew: crew,
		},
		Reviews:   []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
