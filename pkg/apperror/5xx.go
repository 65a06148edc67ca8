package apperror

import "net/http"

const (
	InternalServerCode = "500001"
	EventDispatchCode  = "500002"
)

func ErrInternalServer(err error) Error {
	return NewError(err, http.StatusInternalServerError, InternalServerCode, "Internal Server Error")
}

func ErrEventDispatch(err error) Error {
	return NewError(err, http.StatusInternalServerError, EventDispatchCode, "Event handler failed")
}
