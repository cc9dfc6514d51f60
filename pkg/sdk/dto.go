package sdk

import (
	"github.com/ethanbaker/states/pkg/funfacts"
	"github.com/ethanbaker/states/pkg/states"
)

// Response pairs an HTTP status code with the body written for it
type Response[T any] struct {
	Code int
	Body T
}

// AsGinResponse converts the Response to a format suitable for Gin framework
func (r Response[T]) AsGinResponse() (int, any) {
	return r.Code, r.Body
}

func NewSuccessResponse[T any](data T) Response[T] {
	return Response[T]{
		Code: 200,
		Body: data,
	}
}

func NewErrorResponse(code int, message string, err error) Response[ErrorResponse] {
	res := ErrorResponse{Message: message}
	if err != nil {
		res.Error = err.Error()
	}

	return Response[ErrorResponse]{
		Code: code,
		Body: res,
	}
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

/** Models */

// State is a reference record, with fun facts merged when any exist
type State = states.State

// FunFactDocument is the persisted fun fact list for one state
type FunFactDocument = funfacts.Document

/** Requests */

// AddFunFactsRequest represents the request body for appending fun facts
type AddFunFactsRequest struct {
	Funfacts []string `json:"funfacts"`
}

// UpdateFunFactRequest represents the request body for replacing a fun fact
type UpdateFunFactRequest struct {
	Index   int    `json:"index"`   // 1-based
	Funfact string `json:"funfact"` // Replacement text
}

// DeleteFunFactRequest represents the request body for removing a fun fact
type DeleteFunFactRequest struct {
	Index int `json:"index"` // 1-based
}

/** Responses */

// FunFactResponse holds a single randomly chosen fun fact
type FunFactResponse struct {
	Funfact string `json:"funfact"`
}

// CapitalResponse is the capital projection of a state
type CapitalResponse struct {
	State   string `json:"state"`
	Capital string `json:"capital"`
}

// NicknameResponse is the nickname projection of a state
type NicknameResponse struct {
	State    string `json:"state"`
	Nickname string `json:"nickname"`
}

// PopulationResponse is the population projection of a state
type PopulationResponse struct {
	State      string `json:"state"`
	Population int    `json:"population"`
}

// AdmissionResponse is the admission date projection of a state
type AdmissionResponse struct {
	State    string `json:"state"`
	Admitted string `json:"admitted"`
}

// HealthResponse mirrors the envelope returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
