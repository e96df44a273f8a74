package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adithyasudev/entry-voucher-forge/internal/apperrors"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/services"
	"github.com/adithyasudev/entry-voucher-forge/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a store error onto an HTTP status and logs it at a
// level matching its severity.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Voucher failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting voucher request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Error("Upstream call failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNoCatalog), errors.Is(err, services.ErrNoGateway):
		logger.Error("Backend not configured", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

func badRequest(c *gin.Context, logger *slog.Logger, msg string, err error) {
	logger.Warn(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg + ": " + err.Error()})
}
