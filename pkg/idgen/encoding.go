package idgen

import (
	"fmt"
	"regexp"

	"github.com/outofforest/objectid/pkg/oid"
)

// RE is a (fragment of) a regular expression that matches a possible ID.
var RE = regexp.MustCompile(fmt.Sprintf("[0-9a-fA-F]{%d}", oid.HexSize))

// FindAll returns identifiers found in text, in order of appearance.
func FindAll(text string) []oid.ID {
	matches := RE.FindAllString(text, -1)
	ids := make([]oid.ID, 0, len(matches))
	for _, m := range matches {
		// RE guarantees valid hex of the right length
		id, _ := oid.FromHex(m)
		ids = append(ids, id)
	}
	return ids
}
