package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleBuildModel_Post(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/model", strings.NewReader(`{"years": 3}`))
	rec := httptest.NewRecorder()

	HandleBuildModel(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp BuildResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RunID == "" {
		t.Error("expected a run ID")
	}
	if resp.Model == nil || resp.Model.Years != 3 {
		t.Fatalf("expected a 3-year model, got %+v", resp.Model)
	}
	if resp.Model.IncomeStatement.Revenue.Years() != 3 {
		t.Errorf("expected 3 revenue rows, got %d", resp.Model.IncomeStatement.Revenue.Years())
	}
}

func TestHandleBuildModel_DefaultHorizon(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/model", nil)
	rec := httptest.NewRecorder()

	HandleBuildModel(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp BuildResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Model.Years != 5 {
		t.Errorf("expected default 5-year model, got %d", resp.Model.Years)
	}
}

func TestHandleBuildModel_InvalidYears(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/model", strings.NewReader(`{"years": -1}`))
	rec := httptest.NewRecorder()

	HandleBuildModel(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleBuildModel_BadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/model", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	HandleBuildModel(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
