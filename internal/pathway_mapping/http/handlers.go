package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/graph/export"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/ingest/mapper"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/repository"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/service"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/sif"
)

var contentTypes = map[string]string{
	"json": "application/json; charset=utf-8",
	"yaml": "application/yaml; charset=utf-8",
	"dot":  "text/vnd.graphviz; charset=utf-8",
}

const sifContentType = "text/tab-separated-values; charset=utf-8"

// CreateNetwork converts an uploaded BioPAX document into a network.
// Query: mode=default|sif, name, rules (comma separated, sif only),
// format=json|yaml|dot.
func (h *Handler) CreateNetwork(c *gin.Context) {
	mode, err := service.ParseMode(c.Query("mode"))
	if err != nil {
		writeError(c, badRequest{err.Error()})
		return
	}
	format := strings.ToLower(c.DefaultQuery("format", "json"))
	if _, ok := contentTypes[format]; !ok {
		writeError(c, badRequest{"format must be json, yaml or dot"})
		return
	}
	var rules []string
	if mode == service.ModeSIF {
		if rules, err = h.rules(c); err != nil {
			writeError(c, err)
			return
		}
	}
	body, err := h.readModel(c)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	name := c.Query("name")
	key := repository.Key(string(mode), body, format, name, strings.Join(rules, ","))
	if entry, ok := h.cached(ctx, key); ok {
		runID := uuid.NewString()
		h.record(ctx, entry.summary(runID), entry.Format, entry.Body)
		c.Header("X-Cache", "HIT")
		c.Header("X-Run-Id", runID)
		c.Data(http.StatusOK, contentTypes[format], entry.Body)
		return
	}

	res, err := service.Run(ctx, bytes.NewReader(body), service.Options{Name: name, Mode: mode, Rules: rules})
	if err != nil {
		writeError(c, err)
		return
	}
	payload, err := h.render(res, format)
	if err != nil {
		writeError(c, err)
		return
	}

	entry := cachedRun{
		Mode:      string(res.Mode),
		Name:      res.Network.Name(),
		Nodes:     len(res.Network.Nodes),
		Edges:     len(res.Network.Edges),
		Relations: res.Relations,
		Rules:     res.Rules,
		Format:    format,
		Body:      payload,
	}
	h.record(ctx, entry.summary(res.RunID), format, payload)
	h.store(ctx, key, entry)

	c.Header("X-Cache", "MISS")
	c.Header("X-Run-Id", res.RunID)
	c.Data(http.StatusOK, contentTypes[format], payload)
}

// ConvertSIF returns the binary relations of an uploaded model as SIF text.
func (h *Handler) ConvertSIF(c *gin.Context) {
	rules, err := h.rules(c)
	if err != nil {
		writeError(c, err)
		return
	}
	body, err := h.readModel(c)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	m, err := service.Read(ctx, bytes.NewReader(body))
	if err != nil {
		writeError(c, err)
		return
	}
	var out bytes.Buffer
	n, err := service.ConvertToSIF(ctx, m, rules, &out)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("X-Relation-Count", strconv.Itoa(n))
	c.Data(http.StatusOK, sifContentType, out.Bytes())
}

func (h *Handler) ListRules(c *gin.Context) {
	all := sif.All()
	out := make([]RuleResponse, 0, len(all))
	for _, r := range all {
		out = append(out, RuleResponse{Name: r.Name(), Type: string(r.Type()), Directed: r.Type().Directed()})
	}
	c.JSON(http.StatusOK, gin.H{"rules": out, "default": h.defaultRules})
}

func (h *Handler) GetStyle(c *gin.Context) {
	st, err := h.styles.Get(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) GetRun(c *gin.Context) {
	if h.summaries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history is not configured"})
		return
	}
	s, err := h.summaries.GetByRunID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run": s})
}

// GetRunNetwork returns the stored rendering of a run.
func (h *Handler) GetRunNetwork(c *gin.Context) {
	if h.networks == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "network storage is not configured"})
		return
	}
	payload, format, err := h.networks.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ct, ok := contentTypes[format]
	if !ok {
		ct = "application/octet-stream"
	}
	c.Data(http.StatusOK, ct, payload)
}

// PushNeo4j builds the network of an uploaded model and merges it into
// the configured Neo4j database.
func (h *Handler) PushNeo4j(c *gin.Context) {
	if h.neo4j == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "neo4j is not configured"})
		return
	}
	mode, err := service.ParseMode(c.Query("mode"))
	if err != nil {
		writeError(c, badRequest{err.Error()})
		return
	}
	var rules []string
	if mode == service.ModeSIF {
		if rules, err = h.rules(c); err != nil {
			writeError(c, err)
			return
		}
	}
	body, err := h.readModel(c)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	res, err := service.Run(ctx, bytes.NewReader(body), service.Options{Name: c.Query("name"), Mode: mode, Rules: rules})
	if err != nil {
		writeError(c, err)
		return
	}
	if err := export.PushToNeo4j(ctx, h.neo4j, res.RunID, res.Network); err != nil {
		logger.Error("neo4j push failed", "run_id", res.RunID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to push network to neo4j"})
		return
	}

	c.JSON(http.StatusOK, Neo4jPushResponse{
		RunID:    res.RunID,
		Name:     res.Network.Name(),
		Nodes:    len(res.Network.Nodes),
		Edges:    len(res.Network.Edges),
		PushedAt: time.Now().UTC(),
	})
}

// rules resolves the rules query parameter, falling back to the configured
// default set. Unknown names are a bad request.
func (h *Handler) rules(c *gin.Context) ([]string, error) {
	var names []string
	for _, n := range strings.Split(c.Query("rules"), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		names = h.defaultRules
	}
	if _, err := sif.Select(names...); err != nil {
		return nil, badRequest{err.Error()}
	}
	return names, nil
}

// readModel reads the document from a multipart "file" field or, for any
// other content type, the raw body.
func (h *Handler) readModel(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	var r io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				return nil, err
			}
			return nil, badRequest{"multipart field \"file\" is required"}
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, badRequest{"request body is empty"}
	}
	return body, nil
}

func (h *Handler) render(res *service.Result, format string) ([]byte, error) {
	switch format {
	case "dot":
		typ, _ := res.Network.Row.GetString(mapper.AttrNetworkType)
		st, err := h.styles.ForNetworkType(typ)
		if err != nil {
			return nil, err
		}
		return []byte(export.ToDOT(res.Network, st)), nil
	case "yaml":
		var buf bytes.Buffer
		err := export.EncodeYAML(&buf, responseOf(res))
		return buf.Bytes(), err
	default:
		var buf bytes.Buffer
		err := export.EncodeJSON(&buf, responseOf(res))
		return buf.Bytes(), err
	}
}

// cached returns the stored conversion for key. Read and decode failures
// count as a miss.
func (h *Handler) cached(ctx context.Context, key string) (cachedRun, bool) {
	var entry cachedRun
	raw, ok, err := h.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("result cache read failed", "error", err)
		return entry, false
	}
	if !ok {
		return entry, false
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
		return entry, false
	}
	return entry, true
}

func (h *Handler) store(ctx context.Context, key string, entry cachedRun) {
	if !h.cache.Enabled() {
		return
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		logger.Warn("result cache encode failed", "error", err)
		return
	}
	if err := h.cache.Set(ctx, key, raw); err != nil {
		logger.Warn("result cache write failed", "error", err)
	}
}

// record stores the run summary and rendering. Storage failures are
// logged; the conversion result is still returned.
func (h *Handler) record(ctx context.Context, s *domain.RunSummary, format string, payload []byte) {
	if h.summaries != nil {
		if err := h.summaries.CreateOrUpdate(ctx, s); err != nil {
			logger.Warn("failed to store run summary", "run_id", s.RunID, "error", err)
		}
	}
	if h.networks != nil {
		if err := h.networks.Save(ctx, s.RunID, format, payload); err != nil {
			logger.Warn("failed to store network", "run_id", s.RunID, "error", err)
		}
	}
}

func responseOf(res *service.Result) NetworkResponse {
	return NetworkResponse{
		Mode:      string(res.Mode),
		Name:      res.Network.Name(),
		Stats:     res.Stats,
		Relations: res.Relations,
		Rules:     res.Rules,
		Network:   res.Network,
	}
}
