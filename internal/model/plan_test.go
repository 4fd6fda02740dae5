package model

import (
	"encoding/json"
	"testing"
)

func TestControllerResult_MarshalJSON(t *testing.T) {
	ok := ControllerResult{Body: json.RawMessage(`{"status":"success","posicion_cola":1}`)}
	b, err := json.Marshal(ok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"status":"success","posicion_cola":1}` {
		t.Errorf("expected body passthrough, got %s", b)
	}

	failed := NewControllerError("connection refused")
	b, err = json.Marshal(failed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"error":true,"message":"connection refused"}` {
		t.Errorf("unexpected error payload: %s", b)
	}
}
