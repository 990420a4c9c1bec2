package compareapi

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
)

func compareRequestBody(t *testing.T, req CompareRequest) io.Reader {
	t.Helper()
	b, err := sonic.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return bytes.NewReader(b)
}

func gainTable(name string, rows ...[]float64) TablePayload {
	return TablePayload{
		Name:   name,
		Fields: []string{"Phi[deg]", "Theta[deg]", "gain"},
		Rows:   rows,
	}
}

func TestNewServer(t *testing.T) {
	t.Run("creates server with default config when nil config passed", func(t *testing.T) {
		server := NewServer(nil)

		if server == nil {
			t.Fatal("Expected server to be created, got nil")
		}
		if server.App == nil {
			t.Error("Expected server.App to be initialized")
		}
		if server.config.Port != DefaultServerPort {
			t.Errorf("Expected port %d, got %d", DefaultServerPort, server.config.Port)
		}
		if server.config.BodyLimit != DefaultBodyLimit {
			t.Errorf("Expected body limit %d, got %d", DefaultBodyLimit, server.config.BodyLimit)
		}
	})

	t.Run("uses provided config when passed", func(t *testing.T) {
		server := NewServer(&ServerConfig{Host: "127.0.0.1", Port: 9999, BodyLimit: 1024})

		if server.config.Port != 9999 {
			t.Errorf("Expected port 9999, got %d", server.config.Port)
		}
	})
}

func TestHealthRoute(t *testing.T) {
	server := NewServer(nil)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := server.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestCompareRoute(t *testing.T) {
	server := NewServer(nil)

	t.Run("returns summary, extremes and aligned grids", func(t *testing.T) {
		body := compareRequestBody(t, CompareRequest{
			Reference: gainTable("orig",
				[]float64{0, 0, 10.0},
				[]float64{0, 90, 8.0},
				[]float64{45, 0, 6.0},
			),
			Reconstruction: gainTable("interp",
				[]float64{0, 0, 12.0},
				[]float64{0, 90, 8.0},
				[]float64{45, 0, 5.0},
			),
			Options: CompareOptions{ValueField: "gain", TopN: 2},
		})

		req := httptest.NewRequest("POST", "/compare", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := server.App.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		var out CompareResponse
		if err := sonic.Unmarshal(raw, &out); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}

		if out.Summary.Points != 3 {
			t.Errorf("expected 3 aligned points, got %d", out.Summary.Points)
		}
		if len(out.TopErrors) != 2 {
			t.Errorf("expected 2 ranked extremes, got %d", len(out.TopErrors))
		}
		if out.TopErrors[0].Diff != 2.0 {
			t.Errorf("expected largest diff 2.0, got %g", out.TopErrors[0].Diff)
		}
		if len(out.Grids.Reconstruction) != 2 || len(out.Grids.Reconstruction[0]) != 2 {
			t.Fatalf("expected 2x2 grids, got %dx%d", len(out.Grids.Reconstruction), len(out.Grids.Reconstruction[0]))
		}
		// The (45,90) cell has no sample and must be null in all grids.
		if out.Grids.Reconstruction[1][1] != nil || out.Grids.Reference[1][1] != nil || out.Grids.AbsError[1][1] != nil {
			t.Error("expected null sentinel for unsampled cell")
		}
	})

	t.Run("disjoint keys map to 422", func(t *testing.T) {
		body := compareRequestBody(t, CompareRequest{
			Reference:      gainTable("orig", []float64{0, 0, 10.0}),
			Reconstruction: gainTable("interp", []float64{90, 90, 10.0}),
			Options:        CompareOptions{ValueField: "gain"},
		})

		req := httptest.NewRequest("POST", "/compare", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := server.App.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != 422 {
			t.Errorf("expected 422, got %d", resp.StatusCode)
		}
	})

	t.Run("missing fields map to 422", func(t *testing.T) {
		body := compareRequestBody(t, CompareRequest{
			Reference:      gainTable("orig", []float64{0, 0, 10.0}),
			Reconstruction: gainTable("interp", []float64{0, 0, 10.0}),
			Options:        CompareOptions{ValueField: "no-such-field"},
		})

		req := httptest.NewRequest("POST", "/compare", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := server.App.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != 422 {
			t.Errorf("expected 422, got %d", resp.StatusCode)
		}
	})

	t.Run("ragged row maps to 400 instead of panicking", func(t *testing.T) {
		body := compareRequestBody(t, CompareRequest{
			Reference: gainTable("orig", []float64{0, 0, 10.0}),
			Reconstruction: gainTable("interp",
				[]float64{0, 0}, // two cells against three fields
			),
			Options: CompareOptions{ValueField: "gain"},
		})

		req := httptest.NewRequest("POST", "/compare", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := server.App.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != 400 {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/compare", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := server.App.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != 400 {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})
}
