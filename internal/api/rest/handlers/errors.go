package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Dhoini/Storefront-gateway/internal/domain"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"
	"github.com/gin-gonic/gin"
)

// respondError переводит доменную ошибку в HTTP ответ вида {"error": ...}.
// Никакая ошибка не уходит наверх необработанной: граница обработчика —
// последняя точка, где ошибка становится ответом.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		log.Warn("Not found: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUpstream):
		log.Error("Upstream failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Unexpected error: %v", err)})
	}
}
