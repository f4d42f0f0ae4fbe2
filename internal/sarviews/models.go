package sarviews

// Event represents a SARVIEWS hazard event with its processed products.
type Event struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	Description string    `json:"description"`
	Products    []Product `json:"products"`
}

// Product is a single processed product attached to an event.
type Product struct {
	// ProductID uniquely identifies the processing job that produced this product
	ProductID string `json:"product_id"`

	// JobType is the HyP3 job that produced the product (e.g. "INSAR_GAMMA", "RTC_GAMMA")
	JobType string `json:"job_type"`

	// Granules lists the source granules; the first granule carries the
	// path/frame/acquisition metadata used for filtering
	Granules []Granule `json:"granules"`

	// Files points at the downloadable artifacts
	Files ProductFiles `json:"files"`
}

// Granule contains source-granule metadata for a product.
type Granule struct {
	GranuleName string `json:"granule_name"`

	// Path and Frame identify the satellite track and scene position
	Path  int `json:"path"`
	Frame int `json:"frame"`

	// AcquisitionDate is an ISO 8601 timestamp with UTC offset
	AcquisitionDate string `json:"acquisition_date"`
}

// ProductFiles describes the downloadable files of a product.
type ProductFiles struct {
	ProductURL   string `json:"product_url"`
	ProductName  string `json:"product_name"`
	ProductSize  int64  `json:"product_size"`
	BrowseURL    string `json:"browse_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// JobTypeInSARGamma is the HyP3 job type of GAMMA-processed interferograms,
// the only product type the downloader keeps by default.
const JobTypeInSARGamma = "INSAR_GAMMA"
