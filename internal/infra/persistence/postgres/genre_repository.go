package postgres

import (
	"context"

	"libris/internal/domain/entity"
	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// genreRepository implements the repository.GenreRepository interface.
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository is the constructor for genreRepository.
func NewGenreRepository(db *gorm.DB) repository.GenreRepository {
	return &genreRepository{
		db: db,
	}
}

// FindGenreByID retrieves a genre by its unique ID.
func (repo *genreRepository) FindGenreByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	var genreM model.GenreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&genreM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGenreNotFound
		}

		return nil, errors.Wrap(err, "failed to find genre by ID")
	}

	return toGenreDomain(&genreM), nil
}

// ListGenres retrieves up to limit genres, ordered by name so the same
// catalog yields the same genre spread on every call.
func (repo *genreRepository) ListGenres(ctx context.Context, limit int) ([]*entity.Genre, error) {
	var genreMs []model.GenreModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Find(&genreMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	genres := make([]*entity.Genre, 0, len(genreMs))
	for i := range genreMs {
		genres = append(genres, toGenreDomain(&genreMs[i]))
	}

	return genres, nil
}

// FindGenresForBooks retrieves the genre IDs of every given book in one
// query over the join table.
func (repo *genreRepository) FindGenresForBooks(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	if len(bookIDs) == 0 {
		return map[uuid.UUID][]uuid.UUID{}, nil
	}

	var rows []model.BookGenreModel

	if err := repo.db.WithContext(ctx).
		Where("book_id IN ?", bookIDs).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find genres for books")
	}

	genresByBook := make(map[uuid.UUID][]uuid.UUID, len(bookIDs))
	for _, row := range rows {
		genresByBook[row.BookID] = append(genresByBook[row.BookID], row.GenreID)
	}

	return genresByBook, nil
}

func toGenreDomain(data *model.GenreModel) *entity.Genre {
	genre := &entity.Genre{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
	if data.Description != nil {
		genre.Description = *data.Description
	}

	return genre
}
