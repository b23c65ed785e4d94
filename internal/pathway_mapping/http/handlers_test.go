package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/repository"
)

const emptyOWL = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
 xmlns:bp="http://www.biopax.org/release/biopax-level3.owl#"
 xml:base="http://example.org/empty#">
<bp:CellularLocationVocabulary rdf:about="http://example.org/empty#cytosol">
 <bp:term rdf:datatype="http://www.w3.org/2001/XMLSchema#string">cytosol</bp:term>
</bp:CellularLocationVocabulary>
</rdf:RDF>`

type memSummaries struct {
	mu   sync.Mutex
	runs map[string]*domain.RunSummary
	err  error
}

func (m *memSummaries) CreateOrUpdate(_ context.Context, s *domain.RunSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.runs == nil {
		m.runs = map[string]*domain.RunSummary{}
	}
	m.runs[s.RunID] = s
	return nil
}

func (m *memSummaries) GetByRunID(_ context.Context, runID string) (*domain.RunSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.runs[runID]; ok {
		return s, nil
	}
	return nil, domain.ErrRunNotFound
}

type memNetworks struct {
	payloads map[string][]byte
	formats  map[string]string
}

func (m *memNetworks) Save(_ context.Context, runID, format string, payload []byte) error {
	if m.payloads == nil {
		m.payloads, m.formats = map[string][]byte{}, map[string]string{}
	}
	m.payloads[runID], m.formats[runID] = payload, format
	return nil
}

func (m *memNetworks) Load(_ context.Context, runID string) ([]byte, string, error) {
	p, ok := m.payloads[runID]
	if !ok {
		return nil, "", domain.ErrRunNotFound
	}
	return p, m.formats[runID], nil
}

type fakeNeo4j struct {
	calls int
	err   error
}

func (f *fakeNeo4j) Run(context.Context, string, map[string]any) (*neo4j.EagerResult, error) {
	f.calls++
	return &neo4j.EagerResult{}, f.err
}

func fixture(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/glucose.owl")
	require.NoError(t, err)
	return b
}

func setupRouter(d Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(d).Register(r.Group("/api/v1/biopax"))
	return r
}

func do(r http.Handler, method, target string, body []byte, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateNetwork_Default(t *testing.T) {
	summaries, networks := &memSummaries{}, &memNetworks{}
	r := setupRouter(Deps{Summaries: summaries, Networks: networks})

	rr := do(r, http.MethodPost, "/api/v1/biopax/networks", fixture(t), "application/rdf+xml")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "MISS", rr.Header().Get("X-Cache"))

	var resp struct {
		Mode  string `json:"mode"`
		Name  string `json:"name"`
		Stats struct {
			Nodes int `json:"nodes"`
			Edges int `json:"edges"`
		} `json:"stats"`
		Network struct {
			Nodes []json.RawMessage `json:"nodes"`
		} `json:"network"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "default", resp.Mode)
	assert.Equal(t, "Glucose activation (Default)", resp.Name)
	assert.Equal(t, 5, resp.Stats.Nodes)
	assert.Equal(t, 4, resp.Stats.Edges)
	assert.Len(t, resp.Network.Nodes, 5)
	assert.NotContains(t, rr.Body.String(), "run_id")

	runID := rr.Header().Get("X-Run-Id")
	require.NotEmpty(t, runID)
	s, err := summaries.GetByRunID(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Nodes)
	assert.Equal(t, "json", networks.formats[runID])

	stored := do(r, http.MethodGet, "/api/v1/biopax/runs/"+runID+"/network", nil, "")
	assert.Equal(t, http.StatusOK, stored.Code)
	assert.JSONEq(t, rr.Body.String(), stored.Body.String())
}

func TestCreateNetwork_CacheHit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	summaries, networks := &memSummaries{}, &memNetworks{}
	r := setupRouter(Deps{Cache: repository.NewResultCache(client, time.Minute), Summaries: summaries, Networks: networks})

	first := do(r, http.MethodPost, "/api/v1/biopax/networks?name=HK", fixture(t), "")
	require.Equal(t, http.StatusOK, first.Code)
	second := do(r, http.MethodPost, "/api/v1/biopax/networks?name=HK", fixture(t), "")
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	firstID, secondID := first.Header().Get("X-Run-Id"), second.Header().Get("X-Run-Id")
	require.NotEmpty(t, secondID)
	assert.NotEqual(t, firstID, secondID, "a cache hit is a new run")

	s, err := summaries.GetByRunID(context.Background(), secondID)
	require.NoError(t, err)
	assert.Equal(t, "HK (Default)", s.NetworkName)
	assert.Equal(t, "default", s.Mode)
	assert.Equal(t, 5, s.Nodes)
	assert.Equal(t, 4, s.Edges)
	assert.Equal(t, first.Body.Bytes(), networks.payloads[secondID])
	assert.Equal(t, "json", networks.formats[secondID])

	other := do(r, http.MethodPost, "/api/v1/biopax/networks?name=Other", fixture(t), "")
	assert.Equal(t, "MISS", other.Header().Get("X-Cache"))
}

func TestCreateNetwork_UnreadableCacheEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	r := setupRouter(Deps{Cache: repository.NewResultCache(client, time.Minute)})

	body := fixture(t)
	key := repository.Key("default", body, "json", "", "")
	require.NoError(t, mr.Set(key, "not json"))

	rr := do(r, http.MethodPost, "/api/v1/biopax/networks", body, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "MISS", rr.Header().Get("X-Cache"))
	assert.Contains(t, rr.Body.String(), `"mode": "default"`)
}

func TestCreateNetwork_Formats(t *testing.T) {
	r := setupRouter(Deps{})

	dot := do(r, http.MethodPost, "/api/v1/biopax/networks?format=dot", fixture(t), "")
	require.Equal(t, http.StatusOK, dot.Code)
	assert.True(t, strings.HasPrefix(dot.Body.String(), "digraph G {"))
	assert.Contains(t, dot.Header().Get("Content-Type"), "text/vnd.graphviz")

	yml := do(r, http.MethodPost, "/api/v1/biopax/networks?format=yaml", fixture(t), "")
	require.Equal(t, http.StatusOK, yml.Code)
	assert.Contains(t, yml.Body.String(), "name: Glucose activation (Default)")
}

func TestCreateNetwork_SIFMode(t *testing.T) {
	r := setupRouter(Deps{})
	rr := do(r, http.MethodPost, "/api/v1/biopax/networks?mode=sif&rules=controls-production-of", fixture(t), "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Mode      string   `json:"mode"`
		Relations int      `json:"relations"`
		Rules     []string `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "sif", resp.Mode)
	assert.Equal(t, 1, resp.Relations)
	assert.Equal(t, []string{"controls-production-of"}, resp.Rules)
}

func TestCreateNetwork_Multipart(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "glucose.owl")
	require.NoError(t, err)
	_, err = part.Write(fixture(t))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := setupRouter(Deps{})
	rr := do(r, http.MethodPost, "/api/v1/biopax/networks", body.Bytes(), w.FormDataContentType())
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var empty bytes.Buffer
	w = multipart.NewWriter(&empty)
	require.NoError(t, w.WriteField("other", "x"))
	require.NoError(t, w.Close())
	rr = do(r, http.MethodPost, "/api/v1/biopax/networks", empty.Bytes(), w.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateNetwork_Errors(t *testing.T) {
	r := setupRouter(Deps{MaxUpload: 1 << 20})
	tests := []struct {
		name   string
		target string
		body   string
		code   int
		msg    string
	}{
		{"bad mode", "/api/v1/biopax/networks?mode=sbgn", emptyOWL, http.StatusBadRequest, "unknown mode"},
		{"bad format", "/api/v1/biopax/networks?format=png", emptyOWL, http.StatusBadRequest, "format"},
		{"bad rule", "/api/v1/biopax/networks?mode=sif&rules=bogus", emptyOWL, http.StatusBadRequest, "bogus"},
		{"empty body", "/api/v1/biopax/networks", "  ", http.StatusBadRequest, "empty"},
		{"not biopax", "/api/v1/biopax/networks", "this is not rdf", http.StatusBadRequest, "cannot parse"},
		{"empty pathway", "/api/v1/biopax/networks", emptyOWL, http.StatusUnprocessableEntity, "Pathway is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(r, http.MethodPost, tt.target, []byte(tt.body), "")
			assert.Equal(t, tt.code, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.msg)
		})
	}

	small := setupRouter(Deps{MaxUpload: 16})
	rr := do(small, http.MethodPost, "/api/v1/biopax/networks", fixture(t), "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestCreateNetwork_StorageFailureStillResponds(t *testing.T) {
	r := setupRouter(Deps{Summaries: &memSummaries{err: errors.New("db down")}})
	rr := do(r, http.MethodPost, "/api/v1/biopax/networks", fixture(t), "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestConvertSIF(t *testing.T) {
	r := setupRouter(Deps{})
	rr := do(r, http.MethodPost, "/api/v1/biopax/sif?rules=controls-production-of", fixture(t), "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	assert.Contains(t, rr.Header().Get("Content-Type"), "text/tab-separated-values")
	assert.Equal(t, "1", rr.Header().Get("X-Relation-Count"))
	fields := strings.Split(strings.TrimSuffix(rr.Body.String(), "\n"), "\t")
	require.Len(t, fields, 6)
	assert.Equal(t, "http://identifiers.org/uniprot/P19367", fields[0])
	assert.Equal(t, "controls-production-of", fields[1])
	assert.Equal(t, "Glucose activation", fields[5])

	rr = do(r, http.MethodPost, "/api/v1/biopax/sif", []byte("this is not rdf"), "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestConvertSIF_DefaultRules(t *testing.T) {
	r := setupRouter(Deps{DefaultRules: []string{"in-complex-with"}})
	rr := do(r, http.MethodPost, "/api/v1/biopax/sif", fixture(t), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "0", rr.Header().Get("X-Relation-Count"))
	assert.Empty(t, rr.Body.String())
}

func TestListRulesAndStyles(t *testing.T) {
	r := setupRouter(Deps{})

	rr := do(r, http.MethodGet, "/api/v1/biopax/rules", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var rules struct {
		Rules []RuleResponse `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rules))
	assert.Len(t, rules.Rules, 14)

	rr = do(r, http.MethodGet, "/api/v1/biopax/styles/BioPAX_SIF", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"BioPAX_SIF"`)

	rr = do(r, http.MethodGet, "/api/v1/biopax/styles/SBGN", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetRun(t *testing.T) {
	summaries := &memSummaries{runs: map[string]*domain.RunSummary{"run-1": {RunID: "run-1", Mode: "sif"}}}
	r := setupRouter(Deps{Summaries: summaries})

	rr := do(r, http.MethodGet, "/api/v1/biopax/runs/run-1", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"run_id":"run-1"`)

	rr = do(r, http.MethodGet, "/api/v1/biopax/runs/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(setupRouter(Deps{}), http.MethodGet, "/api/v1/biopax/runs/run-1", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	rr = do(setupRouter(Deps{}), http.MethodGet, "/api/v1/biopax/runs/run-1/network", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestPushNeo4j(t *testing.T) {
	rr := do(setupRouter(Deps{}), http.MethodPost, "/api/v1/biopax/neo4j", fixture(t), "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	runner := &fakeNeo4j{}
	rr = do(setupRouter(Deps{Neo4j: runner}), http.MethodPost, "/api/v1/biopax/neo4j", fixture(t), "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, 2, runner.calls)

	var resp Neo4jPushResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Nodes)
	assert.Equal(t, 4, resp.Edges)

	failing := &fakeNeo4j{err: errors.New("unavailable")}
	rr = do(setupRouter(Deps{Neo4j: failing}), http.MethodPost, "/api/v1/biopax/neo4j", fixture(t), "")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
