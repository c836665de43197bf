// Package native ingests untyped health points exported by the mobile
// platforms and normalizes them into typed values before storage.
package native

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/vitalbridge/internal/healthvalue"
	"github.com/meltforce/vitalbridge/internal/ingest"
	"github.com/meltforce/vitalbridge/internal/storage"
)

// Payload is one upload batch: the originating platform plus a list of
// untyped points, each tagged with the kind it claims to be.
type Payload struct {
	Platform string   `json:"platform"`
	Samples  []Sample `json:"samples"`
}

// Sample is one untyped point in an upload batch.
type Sample struct {
	Type  string                  `json:"type"`
	Point healthvalue.NativePoint `json:"point"`
}

// Provider normalizes native upload batches and stores the accepted values.
type Provider struct {
	db  *storage.DB
	log *slog.Logger
}

// NewProvider creates a new native ingest provider.
func NewProvider(db *storage.DB, log *slog.Logger) *Provider {
	return &Provider{db: db, log: log}
}

// Ingest normalizes every sample in the batch and batch-inserts the results.
// Malformed samples are rejected individually; the rest of the batch still
// lands. Duplicates (same value hash) count as skipped, not inserted.
func (p *Provider) Ingest(ctx context.Context, payload *Payload) (*ingest.Result, error) {
	platform, err := healthvalue.ParsePlatform(payload.Platform)
	if err != nil {
		return nil, fmt.Errorf("parsing platform %q: %w", payload.Platform, err)
	}

	result := &ingest.Result{SamplesReceived: len(payload.Samples)}
	rejectedSet := map[string]bool{}

	rows := make([]storage.SampleRow, 0, len(payload.Samples))
	now := time.Now().UTC()

	for _, s := range payload.Samples {
		v, err := NormalizeSample(s.Type, s.Point, platform)
		if err != nil {
			p.log.Warn("rejecting sample", "kind", s.Type, "error", err)
			result.SamplesRejected++
			if !rejectedSet[s.Type] {
				result.RejectedKinds = append(result.RejectedKinds, s.Type)
				rejectedSet[s.Type] = true
			}
			continue
		}

		encoded, err := json.Marshal(v.Encode())
		if err != nil {
			return result, fmt.Errorf("encoding %s sample: %w", v.Kind(), err)
		}
		rows = append(rows, storage.SampleRow{
			ID:         uuid.New(),
			Kind:       string(v.Kind()),
			Hash:       v.Hash(),
			Platform:   string(platform),
			Payload:    encoded,
			ReceivedAt: now,
		})
	}

	inserted, err := p.db.InsertSamples(ctx, rows)
	if err != nil {
		return result, fmt.Errorf("storing samples: %w", err)
	}
	result.SamplesInserted = inserted
	result.SamplesSkipped = int64(len(rows)) - inserted

	if len(result.RejectedKinds) > 0 {
		result.Message = fmt.Sprintf(
			"Some samples were rejected as malformed or of unknown kind: %v. "+
				"Accepted samples are stored. Check GET /api/v1/kinds for the supported set.",
			result.RejectedKinds)
	}

	return result, nil
}

// NormalizeSample converts one untyped point into its typed value. The kind
// tag selects the variant; the per-variant constructors own the validation
// and default policies.
func NormalizeSample(kind string, pt healthvalue.NativePoint, platform healthvalue.Platform) (healthvalue.Value, error) {
	switch healthvalue.Kind(kind) {
	case healthvalue.KindNumeric:
		return healthvalue.NumericFromNativePoint(pt), nil
	case healthvalue.KindAudiogram:
		return healthvalue.AudiogramFromNativePoint(pt)
	case healthvalue.KindWorkout:
		return healthvalue.WorkoutFromNativePoint(pt)
	case healthvalue.KindEcgRecording:
		return healthvalue.EcgRecordingFromNativePoint(pt)
	case healthvalue.KindNutrition:
		return healthvalue.NutritionFromNativePoint(pt), nil
	case healthvalue.KindMenstruationFlow:
		return healthvalue.MenstruationFlowFromNativePoint(pt, platform)
	default:
		return nil, fmt.Errorf("%w: unknown sample kind %q", healthvalue.ErrMalformedNativePoint, kind)
	}
}
