package models

import "time"

// ItemStatus is the outcome of evaluating one candidate file
type ItemStatus string

const (
	StatusScored       ItemStatus = "scored"
	StatusMissingPair  ItemStatus = "skipped_not_found"
	StatusDecodeFailed ItemStatus = "skipped_decode_failed"
	StatusFailed       ItemStatus = "failed"
	StatusInvalid      ItemStatus = "invalid"
)

// Skipped reports whether the item never reached metric computation
func (s ItemStatus) Skipped() bool {
	return s == StatusMissingPair || s == StatusDecodeFailed
}

// ScoreRecord holds the metrics of one reference/processed pair.
// PCQI is nil when it could not be computed as a finite value.
type ScoreRecord struct {
	Filename string   `json:"filename" yaml:"filename"`
	PCQI     *float64 `json:"pcqi,omitempty" yaml:"pcqi,omitempty"`
	AGRef    float64  `json:"ag_ref" yaml:"ag_ref"`
	AGDist   float64  `json:"ag_dist" yaml:"ag_dist"`
	EIRef    float64  `json:"ei_ref" yaml:"ei_ref"`
	EIDist   float64  `json:"ei_dist" yaml:"ei_dist"`
}

// ItemResult is the typed per-item outcome of a full-reference run
type ItemResult struct {
	Index    int          `json:"index" yaml:"index"`
	Filename string       `json:"filename" yaml:"filename"`
	Status   ItemStatus   `json:"status" yaml:"status"`
	Message  string       `json:"message,omitempty" yaml:"message,omitempty"`
	Record   *ScoreRecord `json:"record,omitempty" yaml:"record,omitempty"`
}

// BatchSummary aggregates the scored items of a full-reference run.
// Means are only meaningful when Empty is false.
type BatchSummary struct {
	Total   int  `json:"total" yaml:"total"`
	Scored  int  `json:"scored" yaml:"scored"`
	Skipped int  `json:"skipped" yaml:"skipped"`
	Failed  int  `json:"failed" yaml:"failed"`
	Invalid int  `json:"invalid" yaml:"invalid"`
	Empty   bool `json:"empty" yaml:"empty"`

	MeanPCQI   float64 `json:"mean_pcqi" yaml:"mean_pcqi"`
	MeanAGRef  float64 `json:"mean_ag_ref" yaml:"mean_ag_ref"`
	MeanAGDist float64 `json:"mean_ag_dist" yaml:"mean_ag_dist"`
	MeanEIRef  float64 `json:"mean_ei_ref" yaml:"mean_ei_ref"`
	MeanEIDist float64 `json:"mean_ei_dist" yaml:"mean_ei_dist"`

	// signed relative change (dist-ref)/ref in percent; nil when ref mean is 0
	AGChangePct *float64 `json:"ag_change_pct,omitempty" yaml:"ag_change_pct,omitempty"`
	EIChangePct *float64 `json:"ei_change_pct,omitempty" yaml:"ei_change_pct,omitempty"`
}

// BatchReport is the complete account of a full-reference run
type BatchReport struct {
	ReferenceDir string        `json:"reference_dir" yaml:"reference_dir"`
	ProcessedDir string        `json:"processed_dir" yaml:"processed_dir"`
	StartedAt    time.Time     `json:"started_at" yaml:"started_at"`
	Elapsed      time.Duration `json:"elapsed_ns" yaml:"elapsed"`
	Items        []ItemResult  `json:"items" yaml:"items"`
	Summary      BatchSummary  `json:"summary" yaml:"summary"`
}

// NoReferenceItem is the per-file outcome of a no-reference run
type NoReferenceItem struct {
	Index    int        `json:"index" yaml:"index"`
	Filename string     `json:"filename" yaml:"filename"`
	Status   ItemStatus `json:"status" yaml:"status"`
	Message  string     `json:"message,omitempty" yaml:"message,omitempty"`
	Score    *float64   `json:"score,omitempty" yaml:"score,omitempty"`
}

// ScoredFile pairs a filename with its score
type ScoredFile struct {
	Filename string  `json:"filename" yaml:"filename"`
	Score    float64 `json:"score" yaml:"score"`
}

// NoReferenceSummary aggregates the valid scores of a no-reference run
type NoReferenceSummary struct {
	Total     int         `json:"total" yaml:"total"`
	Succeeded int         `json:"succeeded" yaml:"succeeded"`
	Empty     bool        `json:"empty" yaml:"empty"`
	Mean      float64     `json:"mean" yaml:"mean"`
	Best      *ScoredFile `json:"best,omitempty" yaml:"best,omitempty"`
	Worst     *ScoredFile `json:"worst,omitempty" yaml:"worst,omitempty"`
}

// NoReferenceReport is the complete account of a no-reference run
type NoReferenceReport struct {
	Dir       string             `json:"dir" yaml:"dir"`
	Metric    string             `json:"metric" yaml:"metric"`
	StartedAt time.Time          `json:"started_at" yaml:"started_at"`
	Elapsed   time.Duration      `json:"elapsed_ns" yaml:"elapsed"`
	Items     []NoReferenceItem  `json:"items" yaml:"items"`
	Summary   NoReferenceSummary `json:"summary" yaml:"summary"`
}
