package healthvalue

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// hashOf computes the stable identity hash for a variant: hex SHA-256 over
// the kind plus a sorted key/value rendering of the hashed fields. Fields
// are usually the variant's wire payload, minus any equality exclusions.
// Sorting makes the digest independent of map iteration order.
func hashOf(kind Kind, fields Payload) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(string(kind))
	for _, k := range keys {
		fmt.Fprintf(&b, "|%s=%v", k, fields[k])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
