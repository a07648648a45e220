package utils

import (
	"encoding/json"
	"net/http"
)

// Kind enumerates the outcome classes every handler replies with. The
// envelope is derived from the kind by a pure function so the HTTP code and
// the envelope code can never drift apart.
type Kind int

const (
	KindSuccess Kind = iota
	KindCreated
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInputError
	KindServerError
	KindBanner
)

// Status is the message object embedded in every response envelope.
type Status struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"Message"`
}

func (k Kind) Status() Status {
	switch k {
	case KindSuccess:
		return Status{"Success", http.StatusOK, "End point returned successfully"}
	case KindCreated:
		return Status{"Success", http.StatusCreated, "End point returned successfully"}
	case KindBadRequest:
		return Status{"Error", http.StatusBadRequest, "End point returned not successful"}
	case KindUnauthorized:
		return Status{"Failed", http.StatusUnauthorized, "You are not authorized to perform this operation"}
	case KindForbidden:
		return Status{"Failed", http.StatusForbidden, "You are not allowed to perform this operation"}
	case KindNotFound:
		return Status{"Failed", http.StatusNotFound, "End point returned not found"}
	case KindConflict:
		return Status{"Failed", http.StatusConflict, "Already exist"}
	case KindInputError:
		return Status{"Failed", http.StatusUnprocessableEntity, "Please check all inputs for validity"}
	case KindBanner:
		return Status{"Success", http.StatusOK, "Blog and Auth API"}
	default:
		return Status{"Failed", http.StatusInternalServerError, "Something went wrong, Please try again later"}
	}
}

// Envelope builds the uniform response body: the status object under
// "message" plus any extra payload entries. Pure; used directly by tests.
func Envelope(k Kind, payload map[string]any) map[string]any {
	body := map[string]any{"message": k.Status()}
	for key, val := range payload {
		body[key] = val
	}
	return body
}

// Respond writes the envelope with the HTTP code taken from the kind.
func Respond(w http.ResponseWriter, k Kind, payload map[string]any) {
	RespondWithJSON(w, k.Status().Code, Envelope(k, payload))
}

// RespondErr writes a payload-free error envelope.
func RespondErr(w http.ResponseWriter, k Kind) {
	Respond(w, k, nil)
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type M map[string]interface{}
