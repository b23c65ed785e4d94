package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/style"
)

func sampleNetwork() *domain.Network {
	n := domain.NewNetwork()
	n.Row.SetString("name", "Glycolysis (Default)")

	cx := n.AddNode()
	cx.Row.SetString("name", "HK complex")
	cx.Row.SetString("BIOPAX_TYPE", "Complex")
	cx.Row.SetList("xref", []string{"UniProt:P19367", "UniProt:P52789"})

	rx := n.AddNode()
	rx.Row.SetString("BIOPAX_TYPE", "Catalysis")
	rx.Hidden.SetString("URI", "http://example.org/#cat1")

	e := n.AddEdge(cx, rx, true)
	e.Row.SetString("interaction", "contains")
	return n
}

func bioPAXStyle(t *testing.T) *style.Style {
	t.Helper()
	s, err := style.NewCache().Get(style.BioPAX)
	require.NoError(t, err)
	return s
}

func TestToDOT(t *testing.T) {
	out := ToDOT(sampleNetwork(), bioPAXStyle(t))

	assert.True(t, strings.HasPrefix(out, "digraph G {\n  rankdir=LR;\n"))
	assert.Contains(t, out, `label="Glycolysis (Default)"`)
	assert.Contains(t, out, `"n0" [label="HK complex", shape=diamond`)
	assert.Contains(t, out, `"n1" [label="n1", shape=triangle`)
	assert.Contains(t, out, `"n0" -> "n1" [label="contains"`)
	assert.Contains(t, out, "arrowhead=dot")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestToDOT_UnknownVisualsFallBack(t *testing.T) {
	n := domain.NewNetwork()
	a := n.AddNode()
	a.Row.SetString("BIOPAX_TYPE", "Mystery")
	b := n.AddNode()
	n.AddEdge(a, b, true).Row.SetString("interaction", "unheard-of")

	out := ToDOT(n, bioPAXStyle(t))
	assert.Contains(t, out, "shape=ellipse")
	assert.Contains(t, out, "arrowhead=none")
}

func TestWriteJSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	net := sampleNetwork()

	jsonPath := filepath.Join(dir, "net.json")
	require.NoError(t, WriteJSON(jsonPath, net))
	raw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"UniProt:P19367"`)
	assert.NotContains(t, string(raw), `"Out"`)

	yamlPath := filepath.Join(dir, "net.yaml")
	require.NoError(t, WriteYAML(yamlPath, net))
	raw, err = os.ReadFile(yamlPath)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Len(t, decoded["nodes"], 2)
	assert.Len(t, decoded["edges"], 1)
}

func TestEncoders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, map[string]int{"nodes": 2}))
	assert.Equal(t, "{\n  \"nodes\": 2\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, EncodeYAML(&buf, map[string]int{"nodes": 2}))
	assert.Equal(t, "nodes: 2\n", buf.String())
}

type call struct {
	query  string
	params map[string]any
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Run(_ context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	f.calls = append(f.calls, call{query, params})
	if f.err != nil {
		return nil, f.err
	}
	return &neo4j.EagerResult{}, nil
}

func TestPushToNeo4j(t *testing.T) {
	r := &fakeRunner{}
	require.NoError(t, PushToNeo4j(context.Background(), r, "run-1", sampleNetwork()))
	require.Len(t, r.calls, 2)

	nodes := r.calls[0]
	assert.Contains(t, nodes.query, "MERGE (n:BioPAX")
	assert.Equal(t, "run-1", nodes.params["run_id"])
	rows := nodes.params["rows"].([]any)
	require.Len(t, rows, 2)

	first := rows[0].(map[string]any)
	assert.Equal(t, "n0", first["id"])
	props := first["props"].(map[string]any)
	assert.Equal(t, "HK complex", props["name"])
	assert.Equal(t, []string{"UniProt:P19367", "UniProt:P52789"}, props["xref"])

	second := rows[1].(map[string]any)["props"].(map[string]any)
	assert.NotContains(t, second, "URI")

	edges := r.calls[1]
	assert.Contains(t, edges.query, "[r:INTERACTION")
	edge := edges.params["rows"].([]any)[0].(map[string]any)
	assert.Equal(t, "n0", edge["source"])
	assert.Equal(t, "n1", edge["target"])
}

func TestPushToNeo4j_Batches(t *testing.T) {
	n := domain.NewNetwork()
	for i := 0; i < neo4jBatch+1; i++ {
		n.AddNode()
	}
	r := &fakeRunner{}
	require.NoError(t, PushToNeo4j(context.Background(), r, "run-2", n))

	require.Len(t, r.calls, 2)
	assert.Len(t, r.calls[0].params["rows"], neo4jBatch)
	assert.Len(t, r.calls[1].params["rows"], 1)
}

func TestPushToNeo4j_Errors(t *testing.T) {
	assert.Error(t, PushToNeo4j(context.Background(), nil, "run", sampleNetwork()))

	r := &fakeRunner{err: errors.New("connection refused")}
	err := PushToNeo4j(context.Background(), r, "run", sampleNetwork())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Len(t, r.calls, 1)
}
