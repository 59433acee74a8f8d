package pipeline

// Event is one step of a recognition run.
//
// The sequence is Metadata, then Processing and Result per page, then
// Complete. A page that fails before its image is encoded skips its
// Processing event.
type Event interface {
	event()
}

// Metadata opens the run with the page count.
type Metadata struct {
	TotalPages int
}

// Processing announces that a page is about to be recognized and carries its
// rendered image.
type Processing struct {
	Page *Page
}

// Result closes one page. Page is nil when the page failed.
type Result struct {
	Number int

	Text string
	Page *Page

	Err error
}

// Complete closes the run with the number of engine calls made.
type Complete struct {
	CallsMade int
}

func (Metadata) event()   {}
func (Processing) event() {}
func (Result) event()     {}
func (Complete) event()   {}
