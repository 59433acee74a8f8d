package api

// PageResult is one page's outcome in the buffered response. A failed page
// keeps its slot with an empty text and the error message.
type PageResult struct {
	PageNumber int `json:"page_number"`

	Text   string `json:"ocr_text"`
	Status string `json:"status"`

	Error string `json:"error,omitempty"`
}

type JobResult struct {
	TotalPages int `json:"total_pages"`

	Results []PageResult `json:"results"`

	CallsMade int `json:"api_calls_made"`
}

// Stream event payloads. Type discriminates: metadata, processing, result,
// complete, error.

type metadataEvent struct {
	Type string `json:"type"`

	TotalPages int `json:"total_pages"`
}

type processingEvent struct {
	Type string `json:"type"`

	PageNumber int    `json:"page_number"`
	PageImage  string `json:"page_image"`
}

type resultEvent struct {
	Type string `json:"type"`

	PageNumber int    `json:"page_number"`
	Text       string `json:"ocr_text"`
	Status     string `json:"status"`

	Error string `json:"error,omitempty"`

	// PageImage is an explicit null for failed pages.
	PageImage *string `json:"page_image"`
}

type completeEvent struct {
	Type string `json:"type"`

	CallsMade int `json:"api_calls_made"`
}

type errorEvent struct {
	Type string `json:"type"`

	Message string `json:"message"`
}
