package accesserrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrIdentityNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found in role assignments",
		http.StatusNotFound,
	)
	ErrRoleLookupFailed = apperror.New(
		apperror.CodePersistence,
		"Unable to verify user role",
		http.StatusInternalServerError,
	)
	ErrLeaveTypeLookupFailed = apperror.New(
		apperror.CodePersistence,
		"Unable to load leave types",
		http.StatusInternalServerError,
	)
)
