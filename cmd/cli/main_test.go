package main

import "testing"

func TestPrettyJSON(t *testing.T) {
	got := prettyJSON([]byte(`{"a":1}`))
	expected := "{\n  \"a\": 1\n}"
	if got != expected {
		t.Fatalf("unexpected json output:\n%s", got)
	}

	if got := prettyJSON([]byte("not json")); got != "not json" {
		t.Fatalf("expected raw passthrough, got %q", got)
	}
}
