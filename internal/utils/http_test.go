package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-biz-reviews/models"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	if _, err := WriteJSON(rec, models.IDResponse{ID: 7}, http.StatusCreated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	if contentType := rec.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("expected application/json, got %q", contentType)
	}

	var body models.IDResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.ID != 7 {
		t.Errorf("expected id=7, got %d", body.ID)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	if _, err := WriteError(rec, "business not found", http.StatusNotFound); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Error != "business not found" {
		t.Errorf("unexpected error message %q", body.Error)
	}
}
