package services

// Error is a service-level failure that maps onto an HTTP status. Anything
// that is not an *Error is treated as a 500 by the delivery layer.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}
