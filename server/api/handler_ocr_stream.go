package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/scriptor-ai/scriptor/pkg/normalizer"
	"github.com/scriptor-ai/scriptor/pkg/pipeline"
)

// handleOCRStream delivers the run as Server-Sent Events. The extension and
// engine checks still fail with a plain 400 before the stream starts. After
// the headers are out, failures can only be reported as an error event.
func (h *Handler) handleOCRStream(w http.ResponseWriter, r *http.Request) {
	file, err := h.readFile(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if !normalizer.Supported(file.Name) {
		writeError(w, http.StatusBadRequest, &normalizer.UnsupportedFormatError{Extension: normalizer.Extension(file.Name)})
		return
	}

	client, err := h.Recognizer(valueModel(r))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	for event, err := range pipeline.New(client).Run(r.Context(), file.Content, file.Name) {
		if err != nil {
			writeEvent(w, errorEvent{
				Type: "error",

				Message: fmt.Sprintf("error processing file: %v", err),
			})

			return
		}

		switch event := event.(type) {
		case pipeline.Metadata:
			if err := writeEvent(w, metadataEvent{
				Type: "metadata",

				TotalPages: event.TotalPages,
			}); err != nil {
				return
			}

		case pipeline.Processing:
			if err := writeEvent(w, processingEvent{
				Type: "processing",

				PageNumber: event.Page.Number,
				PageImage:  event.Page.DataURL(),
			}); err != nil {
				return
			}

		case pipeline.Result:
			result := resultEvent{
				Type: "result",

				PageNumber: event.Number,

				Text:   event.Text,
				Status: "success",
			}

			if event.Err != nil {
				result.Text = ""
				result.Status = "error"
				result.Error = event.Err.Error()
			} else {
				url := event.Page.DataURL()
				result.PageImage = &url
			}

			if err := writeEvent(w, result); err != nil {
				return
			}

		case pipeline.Complete:
			if err := writeEvent(w, completeEvent{
				Type: "complete",

				CallsMade: event.CallsMade,
			}); err != nil {
				return
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, v any) error {
	rc := http.NewResponseController(w)

	var data bytes.Buffer

	enc := json.NewEncoder(&data)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	event := strings.TrimSpace(data.String())

	if _, err := fmt.Fprintf(w, "data: %s\n\n", event); err != nil {
		return err
	}

	return rc.Flush()
}
