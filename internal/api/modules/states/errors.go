package states_module

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidStateCode = errors.New("invalid state abbreviation parameter")
	ErrFactsRequired    = errors.New("fun facts value required")
	ErrIndexRequired    = errors.New("fun fact index value required")
	ErrFactRequired     = errors.New("fun fact value required")
	ErrNoFacts          = errors.New("no fun facts found")
	ErrNoFactAtIndex    = errors.New("no fun fact found at index")
)

// errorResponse is the status and client-facing message written for an error
type errorResponse struct {
	code    int
	message string
}

// errorResponses maps each validation error to its response. Anything not
// listed here is a store failure.
var errorResponses = []struct {
	err error
	res errorResponse
}{
	{ErrInvalidStateCode, errorResponse{http.StatusBadRequest, "Invalid state abbreviation parameter"}},
	{ErrFactsRequired, errorResponse{http.StatusBadRequest, "State fun facts value required"}},
	{ErrIndexRequired, errorResponse{http.StatusBadRequest, "State fun fact index value required"}},
	{ErrFactRequired, errorResponse{http.StatusBadRequest, "State fun fact value required"}},
	{ErrNoFacts, errorResponse{http.StatusNotFound, "No Fun Facts found for this state"}},
	{ErrNoFactAtIndex, errorResponse{http.StatusBadRequest, "No Fun Fact found at that index for the state"}},
}

// responseFor resolves the response for err, reporting false for unknown errors
func responseFor(err error) (errorResponse, bool) {
	for _, entry := range errorResponses {
		if errors.Is(err, entry.err) {
			return entry.res, true
		}
	}
	return errorResponse{}, false
}
