package report

import (
	"encoding/json"
	"os"
)

// ExportJSON writes the master report. All other formats can be
// regenerated from this file without reprocessing the video.
func ExportJSON(r Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return &Error{Path: path, Reason: "marshal report", Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &Error{Path: path, Reason: "write report", Err: err}
	}
	return nil
}

// LoadJSON reads a previously exported master report.
func LoadJSON(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, &Error{Path: path, Reason: "read report", Err: err}
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, &Error{Path: path, Reason: "parse report", Err: err}
	}
	return r, nil
}
