package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-save-keeper/internal/app"
	"github.com/MKhiriev/go-save-keeper/internal/service"
	"github.com/MKhiriev/go-save-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidEmail:            http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrOwnerMismatch:           http.StatusForbidden,
	service.ErrProgressionRegression:   http.StatusConflict,

	store.ErrAccountAlreadyExists: http.StatusConflict,
	store.ErrAccountNotFound:      http.StatusNotFound,
	store.ErrRecordNotFound:       http.StatusNotFound,
	store.ErrProgressionNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the response body written for a sentinel. The client
// matches these bodies to recover the sentinel on its side.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrInvalidEmail:            app.MsgInvalidEmail,
	service.ErrWrongPassword:           app.MsgInvalidLoginPassword,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrOwnerMismatch:           app.MsgAccessDenied,
	service.ErrProgressionRegression:   app.MsgProgressionRegression,

	store.ErrAccountAlreadyExists: app.MsgAccountAlreadyExists,
	store.ErrRecordNotFound:       app.MsgSaveNotFound,
	store.ErrProgressionNotFound:  app.MsgProgressionNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}

	if status := statusFromError(err); status != http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return app.MsgInternalServerError
}

// writeError answers with the status and body mapped from err.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, messageFromError(err), statusFromError(err))
}
