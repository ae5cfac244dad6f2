// Package pagination turns page/size query parameters into bounded
// limit/offset windows over a gorm query.
package pagination

import (
	"strconv"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	firstPage   = 1
	defaultSize = 10
	// maxSize caps a single window so a client cannot request the
	// whole table in one call.
	maxSize = 100
)

// Query is a validated page window. Build one through FromContext; a
// zero Query is not usable.
type Query struct {
	Page int
	Size int
}

func (q Query) offset() int { return (q.Page - 1) * q.Size }

// FromContext reads page and size from the request query string.
// Missing, malformed or out-of-range values fall back to sane bounds
// rather than erroring.
func FromContext(c *gin.Context) Query {
	q := Query{
		Page: atoiOr(c.Query("page"), firstPage),
		Size: atoiOr(c.Query("size"), defaultSize),
	}
	if q.Page < firstPage {
		q.Page = firstPage
	}
	if q.Size < 1 {
		q.Size = defaultSize
	}
	if q.Size > maxSize {
		q.Size = maxSize
	}
	return q
}

// Paginate counts the full result set, loads the requested window into
// dest and reports the paging metadata for the response envelope.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := db.Offset(q.offset()).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	pages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   pages,
		Size:        q.Size,
		HasNextPage: q.Page < pages,
	}, nil
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
