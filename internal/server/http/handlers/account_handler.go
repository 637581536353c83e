package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/server/http/dto"
)

// AccountHandler serves the /api/users endpoints.
type AccountHandler struct {
	facade AccountFacade
	logger *slog.Logger
}

// NewAccountHandler creates AccountHandler instance.
func NewAccountHandler(facade AccountFacade, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{facade: facade, logger: logger}
}

// Register handles POST /api/users/register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidData)
		return
	}

	acc, err := h.facade.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, msgInvalidData)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondError(c, http.StatusConflict, msgAlreadyExists)
		default:
			respondInternal(c, h.logger, "register", err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AccountResponse{ID: acc.ID, Email: acc.Email})
}

// Update handles PUT /api/users/:id.
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		respondError(c, http.StatusNotFound, msgNotFound)
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		// An unknown account outranks a malformed body.
		if _, lookupErr := h.facade.Account(c.Request.Context(), id); lookupErr != nil {
			if errors.Is(lookupErr, domainErrors.ErrNotFound) {
				respondError(c, http.StatusNotFound, msgNotFound)
				return
			}
			respondInternal(c, h.logger, "update", lookupErr)
			return
		}
		respondError(c, http.StatusBadRequest, msgInvalidData)
		return
	}

	if err := h.facade.Update(c.Request.Context(), id, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusNotFound, msgNotFound)
		case errors.Is(err, domainErrors.ErrInvalidEmail):
			respondError(c, http.StatusBadRequest, msgInvalidEmail)
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, msgInvalidData)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondError(c, http.StatusConflict, msgAlreadyExists)
		default:
			respondInternal(c, h.logger, "update", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgUpdated})
}

// Delete handles DELETE /api/users/:id.
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		respondError(c, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.facade.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgNotFound)
			return
		}
		respondInternal(c, h.logger, "delete", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgDeleted})
}

// Login handles POST /api/users/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, msgInvalidCredentials)
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			respondInternal(c, h.logger, "login", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgLoggedIn})
}

// Get handles GET /api/users/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		respondError(c, http.StatusNotFound, msgNotFound)
		return
	}

	acc, err := h.facade.Account(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgNotFound)
			return
		}
		respondInternal(c, h.logger, "get", err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{ID: acc.ID, Email: acc.Email})
}
