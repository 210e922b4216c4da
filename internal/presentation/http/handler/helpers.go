package handler

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/presentation/http/dto/response"
)

// ParseUUIDParam extracts and parses a UUID path parameter, answering 400 on
// a malformed value.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// ToCents converts a decimal amount to integer cents
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
