package provider

// File is an in-memory document or page image passed across provider
// boundaries.
type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}
