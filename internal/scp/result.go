package scp

import (
	"encoding/json"

	"github.com/hyperifyio/scpinfo/internal/extract"
)

// promotedKeys are reported by the main article view and therefore left out
// of MoreInfo.
var promotedKeys = []string{
	"object_class",
	"special_containment_procedures",
	"description",
	"name",
}

// Result is either a scraped record or an error message, never both.
type Result struct {
	ID       string
	MoreInfo extract.Record
	Err      string
}

// Failed reports whether r carries an error instead of a record.
func (r Result) Failed() bool { return r.Err != "" }

// Assemble builds the success result for a harmonized id from the extracted
// fields, dropping the promoted keys. fields is not modified.
func Assemble(id string, fields extract.Record) Result {
	return Result{
		ID:       "SCP-" + id,
		MoreInfo: fields.Without(promotedKeys...),
	}
}

type successWire struct {
	ID       string         `json:"id"`
	MoreInfo extract.Record `json:"more_info"`
}

type errorWire struct {
	Error string `json:"error"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(errorWire{Error: r.Err})
	}
	return json.Marshal(successWire{ID: r.ID, MoreInfo: r.MoreInfo})
}

func (r *Result) UnmarshalJSON(b []byte) error {
	var w struct {
		ID       string          `json:"id"`
		MoreInfo *extract.Record `json:"more_info"`
		Error    string          `json:"error"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out := Result{ID: w.ID, Err: w.Error}
	if w.MoreInfo != nil {
		out.MoreInfo = *w.MoreInfo
	}
	*r = out
	return nil
}
