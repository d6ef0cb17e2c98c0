package v1handler

import (
	"strconv"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"time"

	"github.com/gin-gonic/gin"
)

var errBadCursor = serrors.With(serrors.ErrBadRequest, "cursor must be an RFC 3339 timestamp")

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T        `json:"items"`
	NextCursor *time.Time `json:"nextCursor"`
}

func pathID[T ~[16]byte](c *gin.Context, param, kind string) (T, error) {
	return domain.ParseID[T](kind, c.Param(param))
}

// pagination reads the cursor and limit query parameters.
func pagination(c *gin.Context) (time.Time, uint, error) {
	var cursor time.Time
	if raw := c.Query("cursor"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return time.Time{}, 0, errBadCursor
		}
		cursor = t
	}

	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return time.Time{}, 0, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
		}
		limit = min(n, MaxLimit)
	}

	return cursor, uint(limit), nil //nolint: gosec
}
