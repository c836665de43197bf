package ingest

// Result holds the outcome of an ingest operation.
type Result struct {
	SamplesReceived int   `json:"samples_received"`
	SamplesInserted int64 `json:"samples_inserted"`
	SamplesSkipped  int64 `json:"samples_skipped"`
	SamplesRejected int   `json:"samples_rejected"`

	RejectedKinds []string `json:"rejected_kinds,omitempty"`

	Message string `json:"message,omitempty"`
}
