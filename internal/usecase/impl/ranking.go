// Package impl contains the application-specific business rules implementations.
package impl

import (
	"bytes"
	"math"
	"sort"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// popularityScore blends a book's average rating with its review volume:
// (avg * n) / (n + minReviews). Low-volume books shrink toward zero, and
// the score approaches the raw average as volume grows, never exceeding it.
func popularityScore(book *entity.Book, minReviews int) float64 {
	n := float64(book.TotalReviews)
	if n+float64(minReviews) == 0 {
		return 0
	}

	return book.AverageRating.InexactFloat64() * n / (n + float64(minReviews))
}

// trendingScore weights the recent average rating by the logarithm of
// recent review volume.
func trendingScore(recentAvg float64, recentCount int) float64 {
	return recentAvg * math.Log(float64(recentCount)+1)
}

// lessByID is the final tie-break of every ordering, so that equal-scored
// books rank identically on every pass over the same data.
func lessByID(a, b *entity.Book) bool {
	return lessUUID(a.ID, b.ID)
}

func lessUUID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// rankByPopularity orders books by descending popularity score, breaking
// ties by average rating, review count and finally book ID, and truncates
// to limit.
func rankByPopularity(books []*entity.Book, minReviews, limit int) []*entity.Book {
	ranked := make([]*entity.Book, len(books))
	copy(ranked, books)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		scoreA, scoreB := popularityScore(a, minReviews), popularityScore(b, minReviews)
		if scoreA != scoreB {
			return scoreA > scoreB
		}
		if cmp := a.AverageRating.Cmp(b.AverageRating); cmp != 0 {
			return cmp > 0
		}
		if a.TotalReviews != b.TotalReviews {
			return a.TotalReviews > b.TotalReviews
		}

		return lessByID(a, b)
	})

	return truncateBooks(ranked, limit)
}

// rankByQuality orders books by descending average rating and review
// count. When byRecency is set, creation time is the third key (newer
// first), matching the within-genre ordering.
func rankByQuality(books []*entity.Book, byRecency bool) []*entity.Book {
	ranked := make([]*entity.Book, len(books))
	copy(ranked, books)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if cmp := a.AverageRating.Cmp(b.AverageRating); cmp != 0 {
			return cmp > 0
		}
		if a.TotalReviews != b.TotalReviews {
			return a.TotalReviews > b.TotalReviews
		}
		if byRecency && !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}

		return lessByID(a, b)
	})

	return ranked
}

func truncateBooks(books []*entity.Book, limit int) []*entity.Book {
	if limit >= 0 && len(books) > limit {
		return books[:limit]
	}

	return books
}
