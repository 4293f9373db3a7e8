package wishlist

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

	ErrItemAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Item already in wishlist",
		http.StatusConflict,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in wishlist",
		http.StatusNotFound,
	)

	ErrWishlistFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process wishlist operation",
		http.StatusInternalServerError,
	)
)
