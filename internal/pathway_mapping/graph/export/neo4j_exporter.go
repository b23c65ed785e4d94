package export

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

const neo4jBatch = 500

const (
	mergeNodes = `UNWIND $rows AS row
MERGE (n:BioPAX {run_id: $run_id, node_id: row.id})
SET n += row.props`

	mergeEdges = `UNWIND $rows AS row
MATCH (a:BioPAX {run_id: $run_id, node_id: row.source})
MATCH (b:BioPAX {run_id: $run_id, node_id: row.target})
MERGE (a)-[r:INTERACTION {run_id: $run_id, edge_id: row.id}]->(b)
SET r += row.props`
)

// Runner executes one Cypher statement and buffers its result.
type Runner interface {
	Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error)
}

// Neo4jExecutor is the Runner backed by the official driver.
type Neo4jExecutor struct {
	Driver neo4j.DriverWithContext
	DBName string
}

func NewNeo4jExecutor(uri, username, password, dbName string) (*Neo4jExecutor, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("could not create Neo4j driver: %w", err)
	}
	return &Neo4jExecutor{Driver: driver, DBName: dbName}, nil
}

func (e *Neo4jExecutor) Verify(ctx context.Context) error {
	return e.Driver.VerifyConnectivity(ctx)
}

func (e *Neo4jExecutor) Close(ctx context.Context) error {
	return e.Driver.Close(ctx)
}

func (e *Neo4jExecutor) Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, e.Driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(e.DBName),
	)
	if err != nil {
		return nil, fmt.Errorf("error executing neo4j query: %w", err)
	}
	return result, nil
}

// PushToNeo4j merges the network's nodes as :BioPAX and its edges as
// :INTERACTION, keyed by runID so repeated pushes of one run are idempotent.
// Only visible attributes are stored.
func PushToNeo4j(ctx context.Context, db Runner, runID string, n *domain.Network) error {
	if db == nil {
		return fmt.Errorf("neo4j: no runner configured")
	}

	nodes := make([]any, 0, len(n.Nodes))
	for _, node := range n.Nodes {
		nodes = append(nodes, map[string]any{"id": node.ID, "props": properties(node.Row)})
	}
	edges := make([]any, 0, len(n.Edges))
	for _, e := range n.Edges {
		edges = append(edges, map[string]any{"id": e.ID, "source": e.Source, "target": e.Target, "props": properties(e.Row)})
	}

	for _, step := range []struct {
		query string
		rows  []any
	}{
		{mergeNodes, nodes},
		{mergeEdges, edges},
	} {
		for start := 0; start < len(step.rows); start += neo4jBatch {
			end := min(start+neo4jBatch, len(step.rows))
			params := map[string]any{"run_id": runID, "rows": step.rows[start:end]}
			if _, err := db.Run(ctx, step.query, params); err != nil {
				return fmt.Errorf("push to neo4j: %w", err)
			}
		}
	}
	return nil
}

func properties(row *domain.Row) map[string]any {
	props := make(map[string]any, row.Len())
	for _, k := range row.Keys() {
		switch v := row.Get(k).(type) {
		case string:
			props[k] = v
		case []string:
			props[k] = append([]string(nil), v...)
		}
	}
	return props
}
