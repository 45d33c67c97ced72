package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Request errors.
var (
	// ErrNoFiles indicates an analysis request was built without files.
	ErrNoFiles = errors.New("no files selected")

	// ErrUnknownMode indicates a mode outside the closed set of analyses.
	ErrUnknownMode = errors.New("unknown analysis mode")
)

// Response errors.
var (
	// ErrMalformedCell indicates a row cell that is neither text, number nor null.
	ErrMalformedCell = errors.New("malformed cell")
)

// ServiceError is a non-2xx answer from the analysis service.
type ServiceError struct {
	Status int
	Detail string
}

func (e *ServiceError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("service returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("service returned %d: %s", e.Status, e.Detail)
}

// Detail extracts the service-provided message from err, if there is one.
func Detail(err error) (string, bool) {
	var se *ServiceError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail, true
	}
	return "", false
}
