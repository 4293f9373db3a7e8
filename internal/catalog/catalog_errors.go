package catalog

import (
	"net/http"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidSeason = apperror.New(
		apperror.CodeInvalidInput,
		"Season must be Summer, Winter or AllSeason",
		http.StatusBadRequest,
	)

	ErrInvalidAgeBand = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown age band",
		http.StatusBadRequest,
	)

	ErrInvalidGender = apperror.New(
		apperror.CodeInvalidInput,
		"Gender must be Girls or Boys",
		http.StatusBadRequest,
	)
)
