package jfkdex

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFilters_WireShapes(t *testing.T) {
	got := NewFilters().
		Contains("comments", "Oswald").
		Eq("originator", "CIA").
		Gte("document_date", "1963-11-01").
		Between("page_count", 1, 20).
		Build()

	want := map[string]any{
		"comments":      map[string]any{"operator": "contains", "value": "Oswald"},
		"originator":    map[string]any{"operator": "eq", "value": "CIA"},
		"document_date": map[string]any{"operator": "gte", "value": "1963-11-01"},
		"page_count":    map[string]any{"operator": "between", "value": []any{1, 20}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter object mismatch:\ngot:  %#v\nwant: %#v", got, want)
	}
}

func TestFilters_IsNullCarriesNoOperand(t *testing.T) {
	got := NewFilters().IsNull("review_date").Build()

	entry, ok := got["review_date"].(map[string]any)
	if !ok {
		t.Fatalf("expected filter object for review_date, got %#v", got["review_date"])
	}
	if entry["operator"] != "isNull" {
		t.Errorf("operator: got %v, want isNull", entry["operator"])
	}
	if _, present := entry["value"]; present {
		t.Error("isNull filter must not carry a value key")
	}
}

func TestFilters_LastConditionWins(t *testing.T) {
	got := NewFilters().
		Eq("originator", "FBI").
		Eq("originator", "CIA").
		Build()

	entry := got["originator"].(map[string]any)
	if entry["value"] != "CIA" {
		t.Errorf("value: got %v, want CIA", entry["value"])
	}
}

func TestFilters_EmptyBuildsEmptyObject(t *testing.T) {
	got := NewFilters().Build()

	if got == nil {
		t.Fatal("expected non-nil filter object")
	}
	if len(got) != 0 {
		t.Errorf("expected empty filter object, got %#v", got)
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("serialized form: got %s, want {}", data)
	}
}

func TestFilters_InSearchQueryBody(t *testing.T) {
	q := SearchQuery{
		Query:    "mexico city",
		Metadata: NewFilters().Eq("originator", "CIA").Build(),
		Limit:    5,
	}

	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"query":"mexico city","metadata":{"originator":{"operator":"eq","value":"CIA"}},"limit":5}`
	if string(data) != want {
		t.Errorf("body mismatch:\ngot:  %s\nwant: %s", data, want)
	}
}
