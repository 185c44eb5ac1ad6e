package main

import (
	"net/http"

	"github.com/fitforge/fitforge/internal/errors"
	"github.com/fitforge/fitforge/internal/speech"
)

type speechRequest struct {
	Text string `json:"text"`
}

// speechPOST synthesizes the submitted text. When ElevenLabs renders the
// audio the response is the MP3 payload; when the fallback synthesizer spoke
// the text itself a JSON acknowledgment carries the result kind.
func (app *application) speechPOST(w http.ResponseWriter, r *http.Request) {
	var req speechRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		app.clientError(w, r, http.StatusBadRequest, "missing text")
		return
	}

	result, err := app.speechService.Speak(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, speech.ErrNotSupported) {
			app.clientError(w, r, http.StatusNotImplemented, err.Error())
			return
		}
		app.serverError(w, r, err)
		return
	}

	if result.Kind == speech.KindAudio {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(result.Audio)
		return
	}
	app.writeJSON(w, r, http.StatusOK, result)
}
