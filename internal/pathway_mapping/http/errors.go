package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

// badRequest marks request validation failures.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func writeError(c *gin.Context, err error) {
	var (
		pe  *domain.ParseError
		se  *domain.SerializationError
		br  badRequest
		mbe *http.MaxBytesError
	)
	switch {
	case errors.As(err, &br):
		c.JSON(http.StatusBadRequest, gin.H{"error": br.msg})
	case errors.As(err, &mbe):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
	case errors.As(err, &pe):
		c.JSON(http.StatusBadRequest, gin.H{"error": pe.Error()})
	case errors.Is(err, domain.ErrEmptyResult):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Pathway is empty"})
	case errors.Is(err, domain.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
	case errors.As(err, &se):
		logger.Error("sif serialization failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write SIF output"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
	default:
		logger.Error("biopax request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
