package api

import (
	"net/http"
)

type indexResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type healthResponse struct {
	Status string `json:"status"`

	RecognizerConfigured bool `json:"recognizer_configured"`
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJson(w, indexResponse{
		Message: "Handwritten Form OCR API",
		Status:  "running",
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, healthResponse{
		Status: "healthy",

		RecognizerConfigured: h.RecognizerConfigured(),
	})
}
