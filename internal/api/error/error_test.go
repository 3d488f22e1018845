package error

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEncodeError(t *testing.T) {
	tests := []struct {
		name       string
		code       ErrorCode
		wantStatus int
	}{
		{name: "not found", code: RecipeNotFound, wantStatus: http.StatusNotFound},
		{name: "unauthorized", code: InvalidProfileToken, wantStatus: http.StatusUnauthorized},
		{name: "unknown falls back to 500", code: UnknownError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := EncodeError(rec, tt.code, "msg", "42"); err != nil {
				t.Fatalf("EncodeError() error = %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var body Error
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Code != tt.code || body.ErrorID != "42" || body.Status != tt.wantStatus {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}
