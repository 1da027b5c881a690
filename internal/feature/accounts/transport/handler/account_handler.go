// Package handler provides the HTTP handlers for the accounts feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accounts_backend/internal/api"
	"accounts_backend/internal/feature/accounts/domain/entity"
	"accounts_backend/internal/feature/accounts/transport/http/dto"
	"accounts_backend/internal/feature/accounts/usecase"
)

// AccountUsecase defines the account management operations consumed by this
// handler. Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type AccountUsecase interface {
	// Signup registers a new user and returns the created record.
	Signup(ctx context.Context, p usecase.SignupParams) (*entity.User, error)
	// List returns every stored user.
	List(ctx context.Context) ([]entity.User, error)
	// Update merges the supplied fields into the record with the given ID.
	Update(ctx context.Context, id uint, p usecase.UpdateParams) (*entity.User, error)
	// Delete removes the record with the given ID. Unknown IDs succeed.
	Delete(ctx context.Context, id uint) error
	// Login authenticates a user by email and password.
	Login(ctx context.Context, email, password string) error
}

// AccountHandler processes the HTTP requests for account management.
// It depends on the AccountUsecase interface and handles JSON and multipart
// request/response bodies.
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler creates a new instance of AccountHandler.
// Constructor for dependency injection.
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Signup handles the user registration endpoint.
//
// Endpoint: POST /signup
// - binds the request JSON to SignupReq
// - returns 400 on validation failure
// - returns 500 on creation failure (duplicate email included; the real
//   cause is logged, not exposed)
// - returns 201 with the created record on success
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.accounts.Signup(c.Request.Context(), usecase.SignupParams{
		Name:     req.Name,
		Number:   req.Number,
		DOB:      req.DOB,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			slog.Warn("signup rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
			return
		}
		// Duplicate emails and storage failures share one outward shape to
		// prevent account enumeration.
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create user"})
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// List handles the user listing endpoint.
//
// Endpoint: GET /users
func (h *AccountHandler) List(c *gin.Context) {
	users, err := h.accounts.List(c.Request.Context())
	if err != nil {
		slog.Error("user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// Update handles the profile update endpoint.
//
// Endpoint: PUT /users/:id
// Content-Type: multipart/form-data
// Fields: name, number, dob, email, password (all optional) and an optional
// profilePicture file. Only fields present in the form are merged; absent
// ones keep their stored values.
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		slog.Warn("update rejected: bad id", "id", c.Param("id"), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	// Only form keys actually present become part of the update.
	var p usecase.UpdateParams
	if v, ok := c.GetPostForm("name"); ok {
		p.Name = &v
	}
	if v, ok := c.GetPostForm("number"); ok {
		p.Number = &v
	}
	if v, ok := c.GetPostForm("dob"); ok {
		p.DOB = &v
	}
	if v, ok := c.GetPostForm("email"); ok {
		p.Email = &v
	}
	if v, ok := c.GetPostForm("password"); ok {
		p.Password = &v
	}

	if upload, err := h.readPicture(c); err != nil {
		slog.Warn("update rejected: bad picture upload", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid picture upload"})
		return
	} else if upload != nil {
		p.Picture = upload
	}

	user, err := h.accounts.Update(c.Request.Context(), uint(id), p)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			slog.Warn("update rejected", "error", err, "id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
			return
		}
		// Unknown IDs, email collisions and storage failures share one
		// outward shape; logs carry the distinction.
		slog.Warn("user update failed", "error", err, "id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update user"})
		return
	}

	slog.Info("user update successful", "id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// readPicture extracts the optional profilePicture file from the multipart
// form. It returns (nil, nil) when no file was attached.
func (h *AccountHandler) readPicture(c *gin.Context) (*usecase.PictureUpload, error) {
	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	// Reject oversized uploads before buffering the body.
	if fileHeader.Size > usecase.MaxPictureSize {
		return nil, fmt.Errorf("picture exceeds maximum of %d bytes", usecase.MaxPictureSize)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded file", "error", err)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &usecase.PictureUpload{Data: data, Filename: fileHeader.Filename}, nil
}

// Delete handles the user deletion endpoint.
//
// Endpoint: DELETE /users/:id
// Deleting an unknown ID still responds 200; the operation is idempotent.
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		slog.Warn("delete rejected: bad id", "id", c.Param("id"), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.accounts.Delete(c.Request.Context(), uint(id)); err != nil {
		slog.Error("user deletion failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete user"})
		return
	}

	slog.Info("user deletion successful", "id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted successfully"})
}

// Login handles the user login endpoint.
//
// Endpoint: POST /login
// - binds the request JSON to LoginReq
// - returns 400 with a fixed message on authentication failure; unknown
//   email and wrong password are indistinguishable to the caller
// - returns 500 when the lookup itself fails, so a storage outage is never
//   reported as bad credentials
// - returns 200 with an acknowledgement on success; no token or session is
//   issued
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.accounts.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		if !errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Error("login lookup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to login"})
			return
		}
		// The real cause is logged, never exposed.
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid email or password"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "login successful"})
}
