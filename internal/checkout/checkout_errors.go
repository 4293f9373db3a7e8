package checkout

import (
	"net/http"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pkg/apperror"
)

var ErrEmptyCart = apperror.New(
	apperror.CodeInvalidInput,
	"Cart is empty",
	http.StatusBadRequest,
)
