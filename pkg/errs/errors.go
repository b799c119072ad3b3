package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer      = errors.New("internal server error")
	ErrClient              = errors.New("bad request")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("conflicting record found")
	ErrProductsUnavailable = errors.New("products-service is not available, please try after some time")
)

var errorMap = map[error]int{
	ErrInternalServer:      http.StatusInternalServerError,
	ErrClient:              http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrConflict:            http.StatusBadRequest,
	ErrProductsUnavailable: http.StatusBadRequest,
}

// GetErrorStatusCode resolves an error to its HTTP status. Services wrap the
// sentinels with contextual detail, so the lookup goes through errors.Is.
func GetErrorStatusCode(err error) int {
	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}
	return http.StatusInternalServerError
}
