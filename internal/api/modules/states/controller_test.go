package states_module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	funfacts_store "github.com/ethanbaker/states/internal/stores/funfacts"
	"github.com/ethanbaker/states/pkg/funfacts"
	"github.com/ethanbaker/states/pkg/sdk"
	"github.com/ethanbaker/states/pkg/states"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, store funfacts.StoreInterface) *gin.Engine {
	t.Helper()
	return newRouter(t, NewStatesService(states.MustLoad(), store))
}

func newRouter(t *testing.T, service *StatesService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	RegisterRoutes(&engine.RouterGroup, service)
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, code int, message string) {
	t.Helper()

	assert.Equal(t, code, w.Code, w.Body.String())
	assert.Equal(t, message, decode[sdk.ErrorResponse](t, w).Message)
}

func TestFunFactLifecycle(t *testing.T) {
	engine := setupRouter(t, funfacts_store.NewInMemoryStore())

	w := doRequest(engine, http.MethodPost, "/states/KS/funfact", `{"funfacts":["A","B"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	doc := decode[funfacts.Document](t, w)
	assert.Equal(t, "KS", doc.StateCode)
	assert.Equal(t, []string{"A", "B"}, doc.Funfacts)
	assert.NotEmpty(t, doc.ID)

	w = doRequest(engine, http.MethodPatch, "/states/KS/funfact", `{"index":2,"funfact":"B2"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"A", "B2"}, decode[funfacts.Document](t, w).Funfacts)

	w = doRequest(engine, http.MethodDelete, "/states/KS/funfact", `{"index":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"B2"}, decode[funfacts.Document](t, w).Funfacts)

	w = doRequest(engine, http.MethodGet, "/states/ks", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"B2"}, decode[sdk.State](t, w).Funfacts)

	w = doRequest(engine, http.MethodDelete, "/states/KS/funfact", `{"index":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(mustField(t, w, "funfacts")))

	w = doRequest(engine, http.MethodGet, "/states/KS", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "funfacts")
}

func mustField(t *testing.T, w *httptest.ResponseRecorder, key string) json.RawMessage {
	t.Helper()

	fields := decode[map[string]json.RawMessage](t, w)
	value, ok := fields[key]
	require.True(t, ok, "missing %s in %s", key, w.Body.String())
	return value
}

func TestGetAllStates(t *testing.T) {
	store := funfacts_store.NewInMemoryStore()
	_, err := store.Replace(context.Background(), "HI", []string{"Aloha"})
	require.NoError(t, err)
	engine := setupRouter(t, store)

	tests := []struct {
		name  string
		path  string
		count int
	}{
		{"all", "/states", 50},
		{"contiguous", "/states?contig=true", 48},
		{"non-contiguous", "/states?contig=false", 2},
		{"unrecognized filter", "/states?contig=maybe", 50},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := doRequest(engine, http.MethodGet, test.path, "")
			require.Equal(t, http.StatusOK, w.Code)

			got := decode[[]sdk.State](t, w)
			assert.Len(t, got, test.count)

			for _, state := range got {
				if state.Code == "HI" {
					assert.Equal(t, []string{"Aloha"}, state.Funfacts)
				} else {
					assert.Nil(t, state.Funfacts, state.Code)
				}
			}
		})
	}

	w := doRequest(engine, http.MethodGet, "/states?contig=true", "")
	for _, state := range decode[[]sdk.State](t, w) {
		assert.NotContains(t, []string{"AK", "HI"}, state.Code)
	}
}

func TestInvalidStateCode(t *testing.T) {
	engine := setupRouter(t, funfacts_store.NewInMemoryStore())

	requests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/states/zz", ""},
		{http.MethodGet, "/states/ZZ", ""},
		{http.MethodGet, "/states/Kansas", ""},
		{http.MethodGet, "/states/zz/funfact", ""},
		{http.MethodGet, "/states/zz/capital", ""},
		{http.MethodGet, "/states/zz/nickname", ""},
		{http.MethodGet, "/states/zz/population", ""},
		{http.MethodGet, "/states/zz/admission", ""},
		{http.MethodPost, "/states/zz/funfact", `{"funfacts":["A"]}`},
		{http.MethodPost, "/states/zz/funfact", `not json`},
		{http.MethodPatch, "/states/zz/funfact", `{"index":1,"funfact":"A"}`},
		{http.MethodDelete, "/states/zz/funfact", `{"index":1}`},
	}

	for _, req := range requests {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			w := doRequest(engine, req.method, req.path, req.body)
			assertError(t, w, http.StatusBadRequest, "Invalid state abbreviation parameter")
		})
	}
}

func TestProjections(t *testing.T) {
	engine := setupRouter(t, funfacts_store.NewInMemoryStore())

	w := doRequest(engine, http.MethodGet, "/states/ks/capital", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"Kansas","capital":"Topeka"}`, w.Body.String())

	w = doRequest(engine, http.MethodGet, "/states/KS/nickname", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"Kansas","nickname":"Sunflower State"}`, w.Body.String())

	w = doRequest(engine, http.MethodGet, "/states/KS/population", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"Kansas","population":2937880}`, w.Body.String())

	w = doRequest(engine, http.MethodGet, "/states/KS/admission", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"Kansas","admitted":"1861-01-29"}`, w.Body.String())
}

func TestProjectionsSkipStore(t *testing.T) {
	engine := setupRouter(t, failingStore{})

	for _, field := range []string{"capital", "nickname", "population", "admission"} {
		w := doRequest(engine, http.MethodGet, "/states/KS/"+field, "")
		assert.Equal(t, http.StatusOK, w.Code, field)
	}
}

func TestGetRandomFunFact(t *testing.T) {
	store := funfacts_store.NewInMemoryStore()
	service := NewStatesService(states.MustLoad(), store).WithRandom(func(n int) int { return n - 1 })
	engine := newRouter(t, service)

	w := doRequest(engine, http.MethodGet, "/states/KS/funfact", "")
	assertError(t, w, http.StatusNotFound, "No Fun Facts found for this state")

	_, err := store.Replace(context.Background(), "KS", []string{"A", "B"})
	require.NoError(t, err)

	w = doRequest(engine, http.MethodGet, "/states/ks/funfact", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"funfact":"B"}`, w.Body.String())
}

func TestAddFunFactsValidation(t *testing.T) {
	engine := setupRouter(t, funfacts_store.NewInMemoryStore())

	for _, body := range []string{
		"",
		`{}`,
		`{"funfacts":null}`,
		`{"funfacts":[]}`,
		`{"funfacts":"A"}`,
		`{"funfacts":{"0":"A"}}`,
		`{"funfacts":["A",1]}`,
	} {
		t.Run(body, func(t *testing.T) {
			w := doRequest(engine, http.MethodPost, "/states/KS/funfact", body)
			assertError(t, w, http.StatusBadRequest, "State fun facts value required")
		})
	}

	w := doRequest(engine, http.MethodPost, "/states/KS/funfact", `{"funfacts":`)
	assertError(t, w, http.StatusBadRequest, "Could not parse request body")
}

func TestAddFunFactsAppends(t *testing.T) {
	engine := setupRouter(t, funfacts_store.NewInMemoryStore())

	w := doRequest(engine, http.MethodPost, "/states/MO/funfact", `{"funfacts":["A","B"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[funfacts.Document](t, w)

	w = doRequest(engine, http.MethodPost, "/states/mo/funfact", `{"funfacts":["C","A"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[funfacts.Document](t, w)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "MO", second.StateCode)
	assert.Equal(t, []string{"A", "B", "C", "A"}, second.Funfacts)
}

func TestUpdateFunFactValidation(t *testing.T) {
	store := funfacts_store.NewInMemoryStore()
	engine := setupRouter(t, store)

	// No document yet
	w := doRequest(engine, http.MethodPatch, "/states/KS/funfact", `{"index":1,"funfact":"X"}`)
	assertError(t, w, http.StatusNotFound, "No Fun Facts found for this state")

	_, err := store.Replace(context.Background(), "KS", []string{"A", "B"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		body    string
		code    int
		message string
	}{
		{"missing index", `{"funfact":"X"}`, http.StatusBadRequest, "State fun fact index value required"},
		{"null index", `{"index":null,"funfact":"X"}`, http.StatusBadRequest, "State fun fact index value required"},
		{"empty body", ``, http.StatusBadRequest, "State fun fact index value required"},
		{"non-numeric index", `{"index":"two","funfact":"X"}`, http.StatusBadRequest, "State fun fact index value required"},
		{"fractional index", `{"index":1.5,"funfact":"X"}`, http.StatusBadRequest, "State fun fact index value required"},
		{"missing fact", `{"index":1}`, http.StatusBadRequest, "State fun fact value required"},
		{"empty fact", `{"index":1,"funfact":""}`, http.StatusBadRequest, "State fun fact value required"},
		{"non-string fact", `{"index":1,"funfact":7}`, http.StatusBadRequest, "State fun fact value required"},
		{"index past end", `{"index":3,"funfact":"X"}`, http.StatusBadRequest, "No Fun Fact found at that index for the state"},
		{"negative index", `{"index":-1,"funfact":"X"}`, http.StatusBadRequest, "No Fun Fact found at that index for the state"},
		{"huge index", `{"index":1e20,"funfact":"X"}`, http.StatusBadRequest, "No Fun Fact found at that index for the state"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := doRequest(engine, http.MethodPatch, "/states/KS/funfact", test.body)
			assertError(t, w, test.code, test.message)
		})
	}

	// Nothing above changed the document
	doc, err := store.FindByCode(context.Background(), "KS")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, doc.Funfacts)

	t.Run("numeric string index", func(t *testing.T) {
		w := doRequest(engine, http.MethodPatch, "/states/KS/funfact", `{"index":"1","funfact":"A1"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, []string{"A1", "B"}, decode[funfacts.Document](t, w).Funfacts)
	})
}

// An index of 0 is indistinguishable from a missing index, rather than being
// reported as out of bounds.
func TestIndexZeroTreatedAsMissing(t *testing.T) {
	store := funfacts_store.NewInMemoryStore()
	engine := setupRouter(t, store)

	_, err := store.Replace(context.Background(), "KS", []string{"A"})
	require.NoError(t, err)

	for _, body := range []string{`{"index":0,"funfact":"X"}`, `{"index":"0","funfact":"X"}`, `{"index":false,"funfact":"X"}`} {
		w := doRequest(engine, http.MethodPatch, "/states/KS/funfact", body)
		assertError(t, w, http.StatusBadRequest, "State fun fact index value required")
	}

	w := doRequest(engine, http.MethodDelete, "/states/KS/funfact", `{"index":0}`)
	assertError(t, w, http.StatusBadRequest, "State fun fact index value required")
}

func TestDeleteFunFactValidation(t *testing.T) {
	store := funfacts_store.NewInMemoryStore()
	engine := setupRouter(t, store)

	w := doRequest(engine, http.MethodDelete, "/states/KS/funfact", `{}`)
	assertError(t, w, http.StatusBadRequest, "State fun fact index value required")

	w = doRequest(engine, http.MethodDelete, "/states/KS/funfact", `{"index":1}`)
	assertError(t, w, http.StatusNotFound, "No Fun Facts found for this state")

	_, err := store.Replace(context.Background(), "KS", []string{"A", "B", "C"})
	require.NoError(t, err)

	w = doRequest(engine, http.MethodDelete, "/states/KS/funfact", `{"index":4}`)
	assertError(t, w, http.StatusBadRequest, "No Fun Fact found at that index for the state")

	w = doRequest(engine, http.MethodDelete, "/states/KS/funfact", `{"index":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"A", "C"}, decode[funfacts.Document](t, w).Funfacts)
}

func TestStoreFailure(t *testing.T) {
	engine := setupRouter(t, failingStore{})

	for _, path := range []string{"/states", "/states/KS", "/states/KS/funfact"} {
		w := doRequest(engine, http.MethodGet, path, "")
		assertError(t, w, http.StatusInternalServerError, "Internal server error")
	}

	w := doRequest(engine, http.MethodPost, "/states/KS/funfact", `{"funfacts":["A"]}`)
	assertError(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int
		wantErr bool
	}{
		{"nil", nil, 0, false},
		{"number", float64(3), 3, false},
		{"zero", float64(0), 0, false},
		{"negative", float64(-2), -2, false},
		{"string", "4", 4, false},
		{"padded string", " 4 ", 4, false},
		{"empty string", "", 0, false},
		{"false", false, 0, false},
		{"true", true, 0, true},
		{"fraction", 1.5, 0, true},
		{"word", "one", 0, true},
		{"array", []any{float64(1)}, 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseIndex(test.raw)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrIndexRequired)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestRoutersAreIsolated(t *testing.T) {
	first := setupRouter(t, funfacts_store.NewInMemoryStore())
	second := setupRouter(t, funfacts_store.NewInMemoryStore())

	w := doRequest(first, http.MethodPost, "/states/KS/funfact", `{"funfacts":["A"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(first, http.MethodGet, "/states/KS/funfact", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"funfact":"A"}`, w.Body.String())

	w = doRequest(second, http.MethodGet, "/states/KS/funfact", "")
	assertError(t, w, http.StatusNotFound, "No Fun Facts found for this state")
}
