// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// FindEligibleBooks retrieves all books matching the filter. Ordering is
// left to the ranking engines.
func (repo *bookRepository) FindEligibleBooks(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	query := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Preload("Genres").
		Where("books.total_reviews >= ?", filter.MinReviews)

	if !filter.MinRating.IsZero() {
		query = query.Where("books.average_rating >= ?", filter.MinRating)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("books.created_at >= ?", *filter.CreatedAfter)
	}
	if filter.GenreID != nil {
		query = query.
			Joins("JOIN book_genres ON book_genres.book_id = books.id").
			Where("book_genres.genre_id = ?", *filter.GenreID)
	}

	if err := query.Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find eligible books")
	}

	return toBookDomainList(bookModels), nil
}

// FindBooksSharingGenres retrieves books sharing at least one genre with
// the given book, excluding the book itself.
func (repo *bookRepository) FindBooksSharingGenres(ctx context.Context, bookID uuid.UUID) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	sourceGenres := repo.db.
		Model(&model.BookGenreModel{}).
		Select("genre_id").
		Where("book_id = ?", bookID)

	if err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Preload("Genres").
		Distinct("books.*").
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id IN (?)", sourceGenres).
		Where("books.id <> ?", bookID).
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find books sharing genres")
	}

	return toBookDomainList(bookModels), nil
}

// FindBooksByIDs retrieves the books with the given IDs; missing IDs are
// silently skipped.
func (repo *bookRepository) FindBooksByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Book, error) {
	if len(ids) == 0 {
		return []*entity.Book{}, nil
	}

	var bookModels []*model.BookModel

	if err := repo.db.WithContext(ctx).
		Preload("Genres").
		Where("id IN ?", ids).
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find books by IDs")
	}

	return toBookDomainList(bookModels), nil
}

func toBookDomain(data *model.BookModel) *entity.Book {
	book := &entity.Book{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		AverageRating:   data.AverageRating,
		TotalReviews:    data.TotalReviews,
		PublicationDate: data.PublicationDate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.ISBN != nil {
		book.ISBN = *data.ISBN
	}
	if data.Description != nil {
		book.Description = *data.Description
	}
	if data.CoverImageURL != nil {
		book.CoverImageURL = *data.CoverImageURL
	}

	book.Genres = make([]entity.Genre, 0, len(data.Genres))
	for i := range data.Genres {
		book.Genres = append(book.Genres, *toGenreDomain(&data.Genres[i]))
	}

	return book
}

func toBookDomainList(data []*model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(data))
	for _, bookM := range data {
		books = append(books, toBookDomain(bookM))
	}

	return books
}
