package states_module

import (
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethanbaker/states/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// GetAllStates handles GET requests listing every state, optionally filtered by ?contig=
func (s *StatesService) GetAllStates(c *gin.Context) {
	var contig *bool
	switch c.Query("contig") {
	case "true":
		contig = new(bool)
		*contig = true
	case "false":
		contig = new(bool)
	}

	result, err := s.ListStates(c.Request.Context(), contig)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(result).AsGinResponse())
}

// GetStateHandler handles GET requests for a single state with its fun facts
func (s *StatesService) GetStateHandler(c *gin.Context) {
	state, err := s.GetState(c.Request.Context(), c.Param("state"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(state).AsGinResponse())
}

// GetRandomFunFact handles GET requests for one random fun fact
func (s *StatesService) GetRandomFunFact(c *gin.Context) {
	fact, err := s.RandomFact(c.Request.Context(), c.Param("state"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(sdk.FunFactResponse{Funfact: fact}).AsGinResponse())
}

// GetCapital handles GET requests for a state's capital city
func (s *StatesService) GetCapital(c *gin.Context) {
	state, err := s.Lookup(c.Param("state"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(sdk.CapitalResponse{State: state.State, Capital: state.CapitalCity}).AsGinResponse())
}

// GetNickname handles GET requests for a state's nickname
func (s *StatesService) GetNickname(c *gin.Context) {
	state, err := s.Lookup(c.Param("state"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(sdk.NicknameResponse{State: state.State, Nickname: state.Nickname}).AsGinResponse())
}

// GetPopulation handles GET requests for a state's population
func (s *StatesService) GetPopulation(c *gin.Context) {
	state, err := s.Lookup(c.Param("state"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(sdk.PopulationResponse{State: state.State, Population: state.Population}).AsGinResponse())
}

// GetAdmission handles GET requests for a state's admission date
func (s *StatesService) GetAdmission(c *gin.Context) {
	state, err := s.Lookup(c.Param("state"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(sdk.AdmissionResponse{State: state.State, Admitted: state.AdmissionDate}).AsGinResponse())
}

// AddFunFacts handles POST requests appending fun facts to a state
func (s *StatesService) AddFunFacts(c *gin.Context) {
	code, err := s.NormalizeCode(c.Param("state"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req struct {
		Funfacts any `json:"funfacts"`
	}
	if !bindBody(c, &req) {
		return
	}

	facts, err := parseFacts(req.Funfacts)
	if err != nil {
		writeError(c, err)
		return
	}

	doc, err := s.AddFacts(c.Request.Context(), code, facts)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(doc).AsGinResponse())
}

// UpdateFunFact handles PATCH requests replacing the fun fact at a 1-based index
func (s *StatesService) UpdateFunFact(c *gin.Context) {
	code, err := s.NormalizeCode(c.Param("state"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req struct {
		Index   any `json:"index"`
		Funfact any `json:"funfact"`
	}
	if !bindBody(c, &req) {
		return
	}

	index, err := parseIndex(req.Index)
	if err != nil {
		writeError(c, err)
		return
	}

	// Non-string facts count as missing
	fact, _ := req.Funfact.(string)

	doc, err := s.UpdateFact(c.Request.Context(), code, index, fact)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(doc).AsGinResponse())
}

// DeleteFunFact handles DELETE requests removing the fun fact at a 1-based index
func (s *StatesService) DeleteFunFact(c *gin.Context) {
	code, err := s.NormalizeCode(c.Param("state"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req struct {
		Index any `json:"index"`
	}
	if !bindBody(c, &req) {
		return
	}

	index, err := parseIndex(req.Index)
	if err != nil {
		writeError(c, err)
		return
	}

	doc, err := s.DeleteFact(c.Request.Context(), code, index)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(sdk.NewSuccessResponse(doc).AsGinResponse())
}

/** ---- HELPERS ---- */

// bindBody decodes the JSON body into req. An empty body leaves req zeroed.
func bindBody(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return false
	}
	return true
}

// parseFacts accepts a non-empty JSON array of strings
func parseFacts(raw any) ([]string, error) {
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return nil, ErrFactsRequired
	}

	facts := make([]string, 0, len(list))
	for _, item := range list {
		fact, ok := item.(string)
		if !ok {
			return nil, ErrFactsRequired
		}
		facts = append(facts, fact)
	}

	return facts, nil
}

// parseIndex reads a 1-based index from a JSON number or numeric string.
// Missing and zero values both come back as 0; the service treats 0 as "not
// supplied". Anything that isn't an integer is rejected.
func parseIndex(raw any) (int, error) {
	var value float64

	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		value = v
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, nil
		}

		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, ErrIndexRequired
		}
		value = parsed
	case bool:
		if !v {
			return 0, nil
		}
		return 0, ErrIndexRequired
	default:
		return 0, ErrIndexRequired
	}

	if math.IsNaN(value) || value != math.Trunc(value) {
		return 0, ErrIndexRequired
	}

	// Anything this large is out of bounds for every document
	return int(max(min(value, math.MaxInt32), math.MinInt32)), nil
}

// writeError writes the response for a service error
func writeError(c *gin.Context, err error) {
	if res, ok := responseFor(err); ok {
		c.JSON(sdk.NewErrorResponse(res.code, res.message, nil).AsGinResponse())
		return
	}

	log.Printf("[STATES]: %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Internal server error", err).AsGinResponse())
}
