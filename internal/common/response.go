package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the uniform result shape every business operation returns.
// Error is null on success; payload fields are added by embedding.
type Envelope struct {
	OK    bool    `json:"ok"`
	Error *string `json:"error"`
}

func Success() Envelope {
	return Envelope{OK: true}
}

func Fail(message string) Envelope {
	return Envelope{OK: false, Error: &message}
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"ok": false, "error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithFault writes a transport-level fault. Only the auth guard's
// Forbidden and unexpected internals go through here; business failures use
// RespondWithFailure.
func RespondWithFault(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Fail(message))
}

// RespondWithFailure recovers a business error into the ok:false envelope on a
// 200 response. Anything the taxonomy does not recognize is treated as an
// internal fault and its detail is kept out of the reply.
func RespondWithFailure(w http.ResponseWriter, err error) {
	if HTTPStatusFromError(err) == http.StatusInternalServerError {
		log.Printf("ERROR: internal failure: %v", err)
		RespondWithFault(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	RespondWithJSON(w, http.StatusOK, Fail(err.Error()))
}
