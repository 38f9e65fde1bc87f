package impl

import (
	"context"

	"libris/internal/domain/entity"
	"libris/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// collectExclusions builds the set of book IDs a user has already
// interacted with: reviewed or favorited. Books in this set never appear
// in that user's recommendations.
func collectExclusions(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ratings, err := repoFactory.ReviewRepo().FindRatingsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user ratings")
	}

	favoriteIDs, err := repoFactory.FavoriteRepo().FindBookIDsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user favorites")
	}

	excluded := make(map[uuid.UUID]struct{}, len(ratings)+len(favoriteIDs))
	for _, rating := range ratings {
		excluded[rating.BookID] = struct{}{}
	}
	for _, bookID := range favoriteIDs {
		excluded[bookID] = struct{}{}
	}

	return excluded, nil
}

// filterExcluded removes books whose ID is in the exclusion set,
// preserving order.
func filterExcluded(books []*entity.Book, excluded map[uuid.UUID]struct{}) []*entity.Book {
	if len(excluded) == 0 {
		return books
	}

	kept := make([]*entity.Book, 0, len(books))
	for _, book := range books {
		if _, found := excluded[book.ID]; found {
			continue
		}
		kept = append(kept, book)
	}

	return kept
}
