package collections

import (
	"fmt"
	"strings"
)

// MapRecord converts a raw search hit into a Record. position is the 1-based
// index of the hit in its response and only names records without an ID.
func MapRecord(raw RawRecord, position int) Record {
	rec := Record{
		ID:          firstNonEmpty(raw.SystemNumber, raw.ID),
		Title:       firstNonEmpty(raw.PrimaryTitle, raw.Title),
		Maker:       raw.MakerName(),
		Date:        firstNonEmpty(raw.PrimaryDate, raw.ObjectDate, firstProductionDate(raw.ProductionDates)),
		Description: firstNonEmpty(raw.PrimaryDescription, raw.BriefDescription, raw.SummaryDescription),
		ImageURL:    imageURL(raw),
	}
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("record-%d", position)
	}
	if rec.Title == "" {
		rec.Title = UntitledText
	}
	if rec.Maker == "" {
		rec.Maker = UnknownMakerText
	}
	if rec.Date == "" {
		rec.Date = DateUnavailableText
	}
	if rec.Description == "" {
		rec.Description = NoDescriptionText
	}
	return rec
}

// MapRecords maps every raw hit in order.
func MapRecords(raws []RawRecord) []Record {
	out := make([]Record, 0, len(raws))
	for i, raw := range raws {
		out = append(out, MapRecord(raw, i+1))
	}
	return out
}

func imageURL(raw RawRecord) *string {
	if id := strings.TrimSpace(raw.PrimaryImageID); id != "" {
		u := fmt.Sprintf(framemarkImageTemplate, id)
		return &u
	}
	if thumb := strings.TrimSpace(raw.Images.PrimaryThumbnail); thumb != "" {
		return &thumb
	}
	return nil
}

func firstProductionDate(dates []ProductionDate) string {
	for _, d := range dates {
		if text := strings.TrimSpace(d.Date.Text); text != "" {
			return text
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
