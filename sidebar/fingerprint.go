package sidebar

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"sitenav"
)

// Fingerprint returns a short stable hash of a navigation payload, suitable
// for HTTP ETag comparison. Structurally equal navigations always produce
// the same fingerprint.
func Fingerprint(sections []sitenav.Section) string {
	// Marshalling Section values cannot fail; the types contain no
	// channels, funcs or cycles.
	data, _ := json.Marshal(sections)
	return fmt.Sprintf("%x", xxhash.Sum64(data))
}
