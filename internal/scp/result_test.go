package scp

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hyperifyio/scpinfo/internal/extract"
)

func TestAssemble_DropsPromotedKeys(t *testing.T) {
	var fields extract.Record
	fields.Set("item_#:", "SCP-999")
	fields.Set("object_class", "Safe")
	fields.Set("special_containment_procedures", "None.")
	fields.Set("description", "Orange goo.")
	fields.Set("addendum", "Tickles.")
	fields.Set("name", "SCP-999")

	res := Assemble("999", fields)
	if res.ID != "SCP-999" {
		t.Fatalf("id=%q", res.ID)
	}
	if diff := cmp.Diff([]string{"item_#:", "addendum"}, res.MoreInfo.Keys()); diff != "" {
		t.Fatalf("more_info keys (-want +got):\n%s", diff)
	}
	if fields.Len() != 6 {
		t.Fatalf("input record modified: %v", fields.Keys())
	}
}

func TestResult_JSONShapes(t *testing.T) {
	var fields extract.Record
	fields.Set("b", "2")
	fields.Set("a", "1")
	ok := Assemble("007", fields)
	b, err := json.Marshal(ok)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"id":"SCP-007","more_info":{"b":"2","a":"1"}}`; got != want {
		t.Fatalf("json=%s, want %s", got, want)
	}

	empty, _ := json.Marshal(Assemble("001", extract.Record{}))
	if got, want := string(empty), `{"id":"SCP-001","more_info":{}}`; got != want {
		t.Fatalf("json=%s, want %s", got, want)
	}

	failed, _ := json.Marshal(Result{ID: "SCP-001", Err: "boom"})
	if got, want := string(failed), `{"error":"boom"}`; got != want {
		t.Fatalf("json=%s, want %s", got, want)
	}
}

func TestResult_UnmarshalRoundTrip(t *testing.T) {
	var r Result
	if err := json.Unmarshal([]byte(`{"id":"SCP-002","more_info":{"x":"1","y":"2"}}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Failed() || r.ID != "SCP-002" {
		t.Fatalf("unexpected result %+v", r)
	}
	if diff := cmp.Diff([]string{"x", "y"}, r.MoreInfo.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}

	var e Result
	if err := json.Unmarshal([]byte(`{"error":"nope"}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !e.Failed() || e.Err != "nope" {
		t.Fatalf("unexpected result %+v", e)
	}
}
