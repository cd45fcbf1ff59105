// Package respond holds the JSON helpers and error-to-status mapping shared
// by the API handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/llm"
	"financial_planner/pkg/core/store"

	"k8s.io/klog/v2"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// ErrBadRequest marks client errors in the request itself.
var ErrBadRequest = errors.New("bad request")

// ErrorBody is the JSON error payload.
type ErrorBody struct {
	Detail string             `json:"detail"`
	Issues []assumption.Issue `json:"issues,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		klog.Errorf("[API] failed to encode response: %v", err)
	}
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, assumption.ErrMalformedAssumptions):
		return http.StatusUnprocessableEntity
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Error writes err with the status StatusFor picks. Server errors are logged
// and their detail is not echoed to the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	body := ErrorBody{Detail: err.Error()}

	var verr *assumption.ValidationError
	if errors.As(err, &verr) {
		body.Issues = verr.Issues
	}
	if status == http.StatusInternalServerError {
		klog.Errorf("[API] %s %s: %v", r.Method, r.URL.Path, err)
		body.Detail = "internal server error"
	}
	JSON(w, status, body)
}

// DecodeAssumptions reads an assumption set from the request body. Missing
// sections and fields take their defaults.
func DecodeAssumptions(r *http.Request) (assumption.AssumptionSet, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return assumption.AssumptionSet{}, fmt.Errorf("%w: reading body: %v", ErrBadRequest, err)
	}
	if len(data) > MaxBodyBytes {
		return assumption.AssumptionSet{}, fmt.Errorf("%w: body exceeds %d bytes", ErrBadRequest, MaxBodyBytes)
	}
	a, err := assumption.Decode(data)
	if err != nil {
		return assumption.AssumptionSet{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return a, nil
}
