package cart

import (
	"net/http"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pkg/apperror"
)

var (
	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrLineNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart line not found",
		http.StatusNotFound,
	)

	ErrCartStoreFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to load or persist cart",
		http.StatusInternalServerError,
	)
)
