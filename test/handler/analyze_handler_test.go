package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pfdlens/pfdlens/internal/pkg/errcode"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"message"`
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	var env envelope
	_ = json.Unmarshal(resp.Body.Bytes(), &env)
	return resp, env
}

func TestAnalyzeRendersGraph(t *testing.T) {
	stub := &stubExtractor{reply: fixtureReply}
	router := setupRouter(t, stub)

	resp, env := doJSON(t, router, http.MethodPost, "/api/v1/analyze", `{"sample":"Process Diagram 1"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, 0, env.Code)

	var data struct {
		Result struct {
			Equipment []struct {
				ID   string `json:"id"`
				Type string `json:"type"`
			} `json:"equipment"`
			Connections []struct {
				FromID   string `json:"from_id"`
				FromType string `json:"from_type"`
				ToID     string `json:"to_id"`
				ToType   string `json:"to_type"`
			} `json:"connections"`
		} `json:"result"`
		Graph struct {
			Nodes []struct {
				ID    string `json:"id"`
				Label string `json:"label"`
			} `json:"nodes"`
			Edges []struct {
				From  string `json:"from"`
				To    string `json:"to"`
				Title string `json:"title"`
			} `json:"edges"`
			Physics bool `json:"physics"`
		} `json:"graph"`
		Artifacts struct {
			JSONURL  string `json:"json_url"`
			GraphURL string `json:"graph_url"`
		} `json:"artifacts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	require.Len(t, data.Result.Equipment, 2)
	require.Len(t, data.Result.Connections, 1)
	conn := data.Result.Connections[0]
	require.Equal(t, "E1", conn.FromID)
	require.Equal(t, "Reactor", conn.FromType)
	require.Equal(t, "E2", conn.ToID)
	require.Equal(t, "Pump", conn.ToType)

	require.Len(t, data.Graph.Nodes, 2)
	require.Len(t, data.Graph.Edges, 1)
	require.True(t, data.Graph.Physics)
	require.Equal(t, "E1: Reactor", data.Graph.Nodes[0].Label)
	require.Equal(t, "Reactor to Pump", data.Graph.Edges[0].Title)

	require.NotEmpty(t, data.Artifacts.JSONURL)
	require.NotEmpty(t, data.Artifacts.GraphURL)

	jsonURL, err := url.Parse(data.Artifacts.JSONURL)
	require.NoError(t, err)
	artifactResp := httptest.NewRecorder()
	router.ServeHTTP(artifactResp, httptest.NewRequest(http.MethodGet, jsonURL.Path, nil))
	require.Equal(t, http.StatusOK, artifactResp.Code)
	require.Contains(t, artifactResp.Body.String(), `"from_id": "E1"`)

	graphURL, err := url.Parse(data.Artifacts.GraphURL)
	require.NoError(t, err)
	graphResp := httptest.NewRecorder()
	router.ServeHTTP(graphResp, httptest.NewRequest(http.MethodGet, graphURL.Path, nil))
	require.Equal(t, http.StatusOK, graphResp.Code)
	require.Contains(t, graphResp.Body.String(), "vis-network")
}

func TestAnalyzeEmptyExtraction(t *testing.T) {
	stub := &stubExtractor{reply: `{"equipment":[],"connections":[]}`}
	router := setupRouter(t, stub)

	_, env := doJSON(t, router, http.MethodPost, "/api/v1/analyze", `{"sample":"Process Diagram 1"}`)
	require.Equal(t, 0, env.Code)

	var data struct {
		Graph struct {
			Nodes []interface{} `json:"nodes"`
			Edges []interface{} `json:"edges"`
		} `json:"graph"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Empty(t, data.Graph.Nodes)
	require.Empty(t, data.Graph.Edges)
}

func TestAnalyzeProviderErrorShowsCause(t *testing.T) {
	stub := &stubExtractor{err: errors.New("upstream timeout")}
	router := setupRouter(t, stub)

	_, env := doJSON(t, router, http.MethodPost, "/api/v1/analyze", `{"sample":"Process Diagram 1"}`)
	require.Equal(t, errcode.ErrExtractFailed, env.Code)
	require.Contains(t, env.Msg, "upstream timeout")
	require.NotContains(t, string(env.Data), "graph")
	require.NotContains(t, string(env.Data), "equipment")
}

func TestAnalyzeUnknownSample(t *testing.T) {
	stub := &stubExtractor{reply: fixtureReply}
	router := setupRouter(t, stub)

	_, env := doJSON(t, router, http.MethodPost, "/api/v1/analyze", `{"sample":"No Such Diagram"}`)
	require.Equal(t, errcode.ErrNotFound, env.Code)
	require.Equal(t, 0, stub.calls)
}

func TestAnalyzeInvalidBody(t *testing.T) {
	stub := &stubExtractor{reply: fixtureReply}
	router := setupRouter(t, stub)

	_, env := doJSON(t, router, http.MethodPost, "/api/v1/analyze", `{}`)
	require.Equal(t, errcode.ErrInvalid, env.Code)
	require.Equal(t, 0, stub.calls)
}
