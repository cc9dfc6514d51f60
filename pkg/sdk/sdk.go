package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListStates lists every state. A non-nil contig filters to the contiguous
// (true) or non-contiguous (false) states.
func (c *Client) ListStates(ctx context.Context, contig *bool) ([]State, error) {
	path := "/states"
	if contig != nil {
		path += "?" + url.Values{"contig": {strconv.FormatBool(*contig)}}.Encode()
	}

	var out []State
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetState gets a single state with its fun facts
func (c *Client) GetState(ctx context.Context, code string) (*State, error) {
	var out State
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, ""), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetRandomFunFact gets one random fun fact for a state
func (c *Client) GetRandomFunFact(ctx context.Context, code string) (string, error) {
	var out FunFactResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "funfact"), nil, &out); err != nil {
		return "", err
	}

	return out.Funfact, nil
}

// GetCapital gets a state's capital city
func (c *Client) GetCapital(ctx context.Context, code string) (*CapitalResponse, error) {
	var out CapitalResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "capital"), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetNickname gets a state's nickname
func (c *Client) GetNickname(ctx context.Context, code string) (*NicknameResponse, error) {
	var out NicknameResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "nickname"), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetPopulation gets a state's population
func (c *Client) GetPopulation(ctx context.Context, code string) (*PopulationResponse, error) {
	var out PopulationResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "population"), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetAdmission gets a state's admission date
func (c *Client) GetAdmission(ctx context.Context, code string) (*AdmissionResponse, error) {
	var out AdmissionResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "admission"), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AddFunFacts appends fun facts to a state
func (c *Client) AddFunFacts(ctx context.Context, code string, facts ...string) (*FunFactDocument, error) {
	var out FunFactDocument
	req := &AddFunFactsRequest{Funfacts: facts}
	if err := c.doJSON(ctx, http.MethodPost, statePath(code, "funfact"), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateFunFact replaces the fun fact at a 1-based index
func (c *Client) UpdateFunFact(ctx context.Context, code string, index int, fact string) (*FunFactDocument, error) {
	var out FunFactDocument
	req := &UpdateFunFactRequest{Index: index, Funfact: fact}
	if err := c.doJSON(ctx, http.MethodPatch, statePath(code, "funfact"), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteFunFact removes the fun fact at a 1-based index
func (c *Client) DeleteFunFact(ctx context.Context, code string, index int) (*FunFactDocument, error) {
	var out FunFactDocument
	req := &DeleteFunFactRequest{Index: index}
	if err := c.doJSON(ctx, http.MethodDelete, statePath(code, "funfact"), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Health checks that the API is up
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// statePath builds /states/{code}[/{field}]
func statePath(code, field string) string {
	path := fmt.Sprintf("/states/%s", url.PathEscape(code))
	if field != "" {
		path += "/" + field
	}
	return path
}
