package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format",
		http.StatusBadRequest,
	)
	ErrStartDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"Start date cannot be in the past",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"End date must be after start date",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Manager email not found for user",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"Leave request overlaps with existing request",
		http.StatusConflict,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid decision status",
		http.StatusBadRequest,
	)
	ErrUnauthorizedDecision = apperror.New(
		apperror.CodeForbidden,
		"Unauthorized to make leave decisions",
		http.StatusForbidden,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	// ErrInvalidStatusTransition is returned with the current status in its message.
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Cannot process request in current status",
		http.StatusConflict,
	)
	ErrNotRequestManager = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to process this request",
		http.StatusForbidden,
	)
	ErrNotRequestViewer = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to view this request",
		http.StatusForbidden,
	)
	ErrUnauthorizedPending = apperror.New(
		apperror.CodeForbidden,
		"Unauthorized to view pending requests",
		http.StatusForbidden,
	)
	ErrUnauthorizedTeam = apperror.New(
		apperror.CodeForbidden,
		"Unauthorized to view team history",
		http.StatusForbidden,
	)
	ErrUnauthorizedAll = apperror.New(
		apperror.CodeForbidden,
		"Unauthorized to view all requests",
		http.StatusForbidden,
	)
	ErrSaveFailed = apperror.New(
		apperror.CodePersistence,
		"Failed to save leave request",
		http.StatusInternalServerError,
	)
	ErrUpdateFailed = apperror.New(
		apperror.CodePersistence,
		"Failed to update leave request",
		http.StatusInternalServerError,
	)
	ErrAuditFailed = apperror.New(
		apperror.CodePersistence,
		"Failed to record audit entry",
		http.StatusInternalServerError,
	)
	ErrIDAllocation = apperror.New(
		apperror.CodeIDAllocation,
		"Failed to generate leave ID",
		http.StatusInternalServerError,
	)
)
