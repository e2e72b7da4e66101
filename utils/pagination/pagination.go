// Package pagination holds the shared page/limit query handling.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	Limit       int   `json:"limit"`
}

// Params reads page/limit query values with the API-wide defaults.
func Params(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

func NewEnvelope(page, limit int, total int64) Envelope {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Envelope{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		Limit:       limit,
	}
}
