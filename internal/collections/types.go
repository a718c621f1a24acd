package collections

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Placeholder text substituted for fields the API leaves out.
const (
	UntitledText           = "Untitled"
	UnknownMakerText       = "Unknown maker"
	DateUnavailableText    = "Date not available"
	NoDescriptionText      = "No description available."
	framemarkImageTemplate = "https://framemark.vam.ac.uk/collections/%s/full/768,/0/default.jpg"
)

// Record is the normalized form of one museum object. Values are immutable
// once mapped; pass them by value.
type Record struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Maker       string  `json:"maker"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// HasImage reports whether the record carries an image URL.
func (r Record) HasImage() bool {
	return r.ImageURL != nil && *r.ImageURL != ""
}

// Image returns the image URL or an empty string.
func (r Record) Image() string {
	if r.ImageURL == nil {
		return ""
	}
	return *r.ImageURL
}

// Label is the accessible one-line description of a record.
func (r Record) Label() string {
	return fmt.Sprintf("%s by %s, %s.", r.Title, r.Maker, r.Date)
}

// NarrationText is the text read aloud when the record is opened.
func (r Record) NarrationText() string {
	return strings.Join([]string{r.Title, r.Date, r.Description}, ". ")
}

// SearchResponse mirrors /v2/objects/search. Records stays nil when the
// payload has no records key, which the client treats as malformed.
type SearchResponse struct {
	Info    SearchInfo  `json:"info"`
	Records []RawRecord `json:"records"`
}

// SearchInfo carries paging metadata from the API.
type SearchInfo struct {
	RecordCount int `json:"record_count"`
	Pages       int `json:"pages"`
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
}

// RawRecord is one search hit as sent by the API. Both field spellings seen
// upstream are declared; MapRecord picks whichever is populated.
type RawRecord struct {
	SystemNumber       string           `json:"systemNumber"`
	ID                 string           `json:"id"`
	PrimaryTitle       string           `json:"_primaryTitle"`
	Title              string           `json:"title"`
	PrimaryMaker       json.RawMessage  `json:"_primaryMaker"`
	PrimaryDate        string           `json:"_primaryDate"`
	ObjectDate         string           `json:"objectDate"`
	ProductionDates    []ProductionDate `json:"productionDates"`
	PrimaryDescription string           `json:"_primaryDescription"`
	BriefDescription   string           `json:"briefDescription"`
	SummaryDescription string           `json:"summaryDescription"`
	PrimaryImageID     string           `json:"_primaryImageId"`
	Images             RawImages        `json:"_images"`
}

// ProductionDate mirrors an entry of productionDates.
type ProductionDate struct {
	Date struct {
		Text string `json:"text"`
	} `json:"date"`
}

// RawImages mirrors the _images block.
type RawImages struct {
	PrimaryThumbnail string `json:"_primary_thumbnail"`
	IIIFImageBaseURL string `json:"_iiif_image_base_url"`
}

type rawMaker struct {
	Name        string `json:"name"`
	Association string `json:"association"`
}

// MakerName decodes _primaryMaker, which is either a plain string or an
// object with a name.
func (r RawRecord) MakerName() string {
	if len(r.PrimaryMaker) == 0 {
		return ""
	}
	var name string
	if err := json.Unmarshal(r.PrimaryMaker, &name); err == nil {
		return strings.TrimSpace(name)
	}
	var maker rawMaker
	if err := json.Unmarshal(r.PrimaryMaker, &maker); err == nil {
		return strings.TrimSpace(maker.Name)
	}
	return ""
}
