package banners

// Banner is a display-configuration record keyed by a caller-supplied id.
type Banner struct {
	ID          string
	Title       string
	Description string
	Timer       float64
	URL         string
}

// View is the public representation returned by fetch; the id is not echoed.
type View struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Timer       float64 `json:"timer"`
	URL         string  `json:"url"`
}

// UpsertStatus reports whether an upsert created or replaced a banner.
type UpsertStatus string

const (
	StatusCreated UpsertStatus = "created"
	StatusUpdated UpsertStatus = "updated"
)

// UpsertResult is returned by Service.Upsert.
type UpsertResult struct {
	ID     string
	Status UpsertStatus
}

func (b Banner) view() View {
	return View{Title: b.Title, Description: b.Description, Timer: b.Timer, URL: b.URL}
}
