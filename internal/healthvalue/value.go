// Package healthvalue defines the closed set of strongly-typed health
// measurement values that normalize loosely-typed native data points from
// the two mobile health ecosystems into one canonical representation.
//
// Every variant supports construction from a native point, symmetric
// encode/decode to a null-omitting wire payload, structural equality, and a
// stable content hash used downstream for deduplication. Instances are
// immutable once constructed; all operations are pure.
package healthvalue

// Kind identifies one concrete variant within the closed value set. It is
// the discriminator string external decode registries dispatch on — the
// wire payload itself carries no type tag.
type Kind string

const (
	KindNumeric          Kind = "numeric"
	KindAudiogram        Kind = "audiogram"
	KindWorkout          Kind = "workout"
	KindEcgRecording     Kind = "electrocardiogram"
	KindNutrition        Kind = "nutrition"
	KindMenstruationFlow Kind = "menstruation_flow"
)

// Kinds returns every variant discriminator in registration order.
func Kinds() []Kind {
	return []Kind{
		KindNumeric,
		KindAudiogram,
		KindWorkout,
		KindEcgRecording,
		KindNutrition,
		KindMenstruationFlow,
	}
}

// Value is the capability set shared by every health value variant.
// Equality and hashing are structural and origin-independent: a value
// constructed from a native point compares equal to the same value decoded
// from its wire payload.
type Value interface {
	// Kind returns the variant discriminator.
	Kind() Kind
	// Encode produces the wire payload: snake_case field names, absent
	// fields omitted entirely, enums as canonical name strings, sequences
	// as ordered lists.
	Encode() Payload
	// Equal reports whether other is the same variant with equal fields.
	// Per-variant exclusions (NumericValue ignores uuid) are documented on
	// the variant.
	Equal(other Value) bool
	// Hash returns a stable hex content hash over the same fields Equal
	// considers. Equal values always hash identically.
	Hash() string
	// String returns a short human-readable summary.
	String() string
}
