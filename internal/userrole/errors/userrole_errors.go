package userroleerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrUserRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found in role assignments",
		http.StatusNotFound,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be one of Admin, Manager, Employee",
		http.StatusBadRequest,
	)
	ErrSelfManager = apperror.New(
		apperror.CodeInvalidInput,
		"A user cannot be their own manager",
		http.StatusBadRequest,
	)
)
