package leavetypeerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrLeaveTypeNameTaken = apperror.New(
		apperror.CodeConflict,
		"Another leave type already uses this name",
		http.StatusConflict,
	)
)
