package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrInvalidCredentials = errors.New("Email or password is incorrect")
	ErrAccountNotFound    = errors.New("Account not found")
	ErrWrongPassword      = errors.New("Password is incorrect")
	ErrEmailAlreadyUsed   = errors.New("Email has already been used")
	ErrNotFound           = errors.New("Resource not found")
	ErrCartNotFound       = errors.New("Cart not found")
	ErrCartItemNotFound   = errors.New("Item not found")
	ErrProductNotFound    = errors.New("Product not found")
)

var errorMap = map[error]int{
	ErrInternalServer:     http.StatusInternalServerError,
	ErrClient:             http.StatusBadRequest,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrEmailAlreadyUsed:   http.StatusBadRequest,
	ErrNotFound:           http.StatusNotFound,
	ErrCartNotFound:       http.StatusNotFound,
	ErrCartItemNotFound:   http.StatusNotFound,
	ErrProductNotFound:    http.StatusNotFound,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
