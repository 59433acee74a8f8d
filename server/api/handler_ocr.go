package api

import (
	"errors"
	"net/http"

	"github.com/scriptor-ai/scriptor/pkg/normalizer"
	"github.com/scriptor-ai/scriptor/pkg/pipeline"
)

func (h *Handler) handleOCR(w http.ResponseWriter, r *http.Request) {
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

	result := JobResult{
		Results: []PageResult{},
	}

	for event, err := range pipeline.New(client).Run(r.Context(), file.Content, file.Name) {
		if err != nil {
			writeError(w, statusForError(err), err)
			return
		}

		switch event := event.(type) {
		case pipeline.Metadata:
			result.TotalPages = event.TotalPages

		case pipeline.Result:
			page := PageResult{
				PageNumber: event.Number,

				Text:   event.Text,
				Status: "success",
			}

			if event.Err != nil {
				page.Text = ""
				page.Status = "error"
				page.Error = event.Err.Error()
			}

			result.Results = append(result.Results, page)

		case pipeline.Complete:
			result.CallsMade = event.CallsMade
		}
	}

	writeJson(w, result)
}

func statusForError(err error) int {
	var unsupported *normalizer.UnsupportedFormatError

	if errors.As(err, &unsupported) {
		return http.StatusBadRequest
	}

	var decode *normalizer.DecodeError

	if errors.As(err, &decode) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
