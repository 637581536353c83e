package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/accounts/internal/server/http/dto"
	"github.com/polkiloo/accounts/internal/server/http/middleware"
)

const (
	msgInvalidData        = "Invalid data"
	msgInvalidEmail       = "Invalid email format."
	msgAlreadyExists      = "User already exists."
	msgNotFound           = "User not found"
	msgInvalidCredentials = "Invalid credentials"
	msgInternal           = "Internal server error"

	msgUpdated  = "User updated successfully"
	msgDeleted  = "User deleted successfully"
	msgLoggedIn = "User logged in successfully"
)

// accountID parses the :id path parameter. Anything but a positive integer
// cannot name an account.
func accountID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

func respondInternal(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.ErrorContext(c.Request.Context(), "account operation failed",
		slog.String("op", op),
		slog.String("request_id", middleware.RequestID(c)),
		slog.String("error", err.Error()),
	)
	respondError(c, http.StatusInternalServerError, msgInternal)
}
