package gallery

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/five82/vitrine/internal/collections"
)

// PlaceholderCount is the size of the fallback record set.
const PlaceholderCount = 30

const (
	placeholderFirstYear   = 1900
	placeholderDescription = "Placeholder artefact shown while the collection is unavailable."
)

// Placeholders returns the deterministic fallback records used when the
// Record Source fails. Calls always return equal values.
func Placeholders() []collections.Record {
	out := make([]collections.Record, 0, PlaceholderCount)
	for i := 1; i <= PlaceholderCount; i++ {
		out = append(out, collections.Record{
			ID:          placeholderID(i),
			Title:       fmt.Sprintf("Theatre Artifact %d", i),
			Maker:       collections.UnknownMakerText,
			Date:        strconv.Itoa(placeholderFirstYear + i - 1),
			Description: placeholderDescription,
			ImageURL:    nil,
		})
	}
	return out
}

func placeholderID(n int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("vitrine:placeholder:"+strconv.Itoa(n))).String()
}
