package json

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodeBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int64
		wantErr bool
		trailer bool
	}{
		{name: "array", input: `[1,2,3]`, want: []int64{1, 2, 3}},
		{name: "empty array", input: `[]`, want: []int64{}},
		{name: "malformed", input: `[1,`, wantErr: true},
		{name: "wrong type", input: `["a"]`, wantErr: true},
		{name: "trailing value", input: `[1] [2]`, wantErr: true, trailer: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int64
			err := DecodeBytes(&got, []byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeBytes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.trailer && !errors.Is(err, ErrTrailingData) {
				t.Errorf("expected ErrTrailingData, got %v", err)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index %d: expected %d, got %d", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestDecodeStrict_UnknownField(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	err := DecodeStrict(&dst, strings.NewReader(`{"name":"x","extra":1}`))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteJSON(rec, http.StatusCreated, map[string]string{"id": "abc"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}
	if body := rec.Body.String(); body != `{"id":"abc"}` {
		t.Errorf("unexpected body %q", body)
	}
}
