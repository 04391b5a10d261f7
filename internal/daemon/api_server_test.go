package daemon

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reel/internal/api"
	"reel/internal/testsupport"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	d, err := New(cfg, store, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	server := httptest.NewServer(d.api.routes())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any, dest any) *http.Response {
	t.Helper()
	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func getJSON(t *testing.T, url string, dest any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func TestGenerateAndListFacts(t *testing.T) {
	server := newTestServer(t)

	var generated api.FactListResponse
	resp := postJSON(t, server.URL+"/api/facts/generate", api.GenerateFactsRequest{Count: 3, Categories: []string{"Science"}}, &generated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(generated.Facts) != 3 {
		t.Fatalf("expected 3 facts, got %d", len(generated.Facts))
	}

	var listed api.FactListResponse
	if resp := getJSON(t, server.URL+"/api/facts?category=Science", &listed); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(listed.Facts) != 3 {
		t.Fatalf("expected 3 listed facts, got %d", len(listed.Facts))
	}
}

func TestCreateFactValidation(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/facts", api.CreateFactRequest{Content: "  "}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty content, got %d", resp.StatusCode)
	}

	var created api.Fact
	resp = postJSON(t, server.URL+"/api/facts", api.CreateFactRequest{Content: "Koalas sleep up to 22 hours a day.", Category: "Nature"}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
}

func TestScriptBatchReportsSkips(t *testing.T) {
	server := newTestServer(t)

	var facts api.FactListResponse
	postJSON(t, server.URL+"/api/facts/generate", api.GenerateFactsRequest{Count: 2, Categories: []string{"History"}}, &facts)

	req := api.GenerateScriptsRequest{FactIDs: []int64{facts.Facts[0].ID, 99999, facts.Facts[1].ID}, Format: "Educational"}
	var resp api.GenerateScriptsResponse
	postJSON(t, server.URL+"/api/scripts/generate", req, &resp)

	if len(resp.Scripts) != 2 {
		t.Fatalf("expected 2 scripts, got %d", len(resp.Scripts))
	}
	if len(resp.Outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(resp.Outcomes))
	}
	failures := 0
	for _, outcome := range resp.Outcomes {
		if !outcome.OK {
			failures++
			if outcome.ID != 99999 {
				t.Fatalf("expected skip for id 99999, got %d", outcome.ID)
			}
		}
	}
	if failures != 1 {
		t.Fatalf("expected exactly 1 failed outcome, got %d", failures)
	}
}

func TestPublishConflict(t *testing.T) {
	server := newTestServer(t)

	var pipelineResp api.PipelineRunResponse
	postJSON(t, server.URL+"/api/pipeline/run", api.PipelineRunRequest{FactCount: 1, Categories: []string{"Nature"}}, &pipelineResp)
	if len(pipelineResp.Videos) != 1 {
		t.Fatalf("expected 1 video, got %d", len(pipelineResp.Videos))
	}
	videoID := pipelineResp.Videos[0].ID

	var first api.PublishVideosResponse
	postJSON(t, server.URL+"/api/publish", api.PublishVideosRequest{VideoIDs: []int64{videoID}}, &first)
	if len(first.Published) != 1 {
		t.Fatalf("expected 1 publish record, got %d", len(first.Published))
	}

	var second api.PublishVideosResponse
	postJSON(t, server.URL+"/api/publish", api.PublishVideosRequest{VideoIDs: []int64{videoID}}, &second)
	if len(second.Published) != 0 {
		t.Fatalf("expected no new publish records, got %d", len(second.Published))
	}
	if len(second.Outcomes) != 1 || second.Outcomes[0].OK {
		t.Fatalf("expected failed outcome, got %+v", second.Outcomes)
	}

	var forced api.PublishVideosResponse
	postJSON(t, server.URL+"/api/publish", api.PublishVideosRequest{VideoIDs: []int64{videoID}, Privacy: "Unlisted", Force: true}, &forced)
	if len(forced.Published) != 1 || forced.Published[0].Privacy != "Unlisted" {
		t.Fatalf("expected forced Unlisted publish, got %+v", forced.Published)
	}
}

func TestPipelineRunEndToEnd(t *testing.T) {
	server := newTestServer(t)

	var resp api.PipelineRunResponse
	httpResp := postJSON(t, server.URL+"/api/pipeline/run", api.PipelineRunRequest{
		FactCount:  3,
		Categories: []string{"Nature"},
		Format:     "Educational",
		Resolution: "1080p",
		VoiceType:  "Female",
		Publish:    true,
		Privacy:    "Unlisted",
	}, &resp)
	if httpResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", httpResp.StatusCode)
	}

	if len(resp.Published) != 3 {
		t.Fatalf("expected 3 published, got %d", len(resp.Published))
	}
	urls := map[string]bool{}
	for _, pub := range resp.Published {
		if pub.Privacy != "Unlisted" {
			t.Fatalf("expected Unlisted, got %q", pub.Privacy)
		}
		if urls[pub.ExternalURL] {
			t.Fatalf("duplicate external url %q", pub.ExternalURL)
		}
		urls[pub.ExternalURL] = true
	}

	var listed api.PublishedListResponse
	getJSON(t, server.URL+"/api/published", &listed)
	if len(listed.Published) != 3 {
		t.Fatalf("expected 3 publish records listed, got %d", len(listed.Published))
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	var report api.HealthReport
	resp := getJSON(t, server.URL+"/api/health", &report)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !report.Healthy {
		t.Fatalf("expected healthy catalog, got %+v", report)
	}
}

func TestStatusEndpoint(t *testing.T) {
	server := newTestServer(t)

	var status api.DaemonStatus
	resp := getJSON(t, server.URL+"/api/status", &status)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if status.CatalogPath == "" {
		t.Fatal("expected catalog path in status")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/facts?category=x", map[string]string{"content": "x"}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected POST /api/facts to create, got %d", resp.StatusCode)
	}

	getResp, err := http.Get(server.URL + "/api/publish")
	if err != nil {
		t.Fatalf("GET /api/publish: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", getResp.StatusCode)
	}
}
