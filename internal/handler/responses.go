package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgNotEnoughCoinsError = "Not enough coins to spin"
	ErrMsgBonusClaimedError   = "Daily bonus already claimed. Come back tomorrow"
	ErrMsgInvalidGuessError   = "Guess must be red or black"
	ErrMsgNoDoubleOfferError  = "There is no double or nothing offer to resolve"
	ErrMsgActionInFlightError = "That action is already in progress"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgInvalidOutcomeError = "The reels produced an invalid result"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrBonusAlreadyClaimed):
		return http.StatusTooManyRequests, ErrMsgBonusClaimedError
	case errors.Is(err, domain.ErrInvalidGuess):
		return http.StatusBadRequest, ErrMsgInvalidGuessError
	case errors.Is(err, domain.ErrNoDoubleOffer):
		return http.StatusConflict, ErrMsgNoDoubleOfferError
	case errors.Is(err, domain.ErrActionInFlight):
		return http.StatusConflict, ErrMsgActionInFlightError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidOutcome):
		return http.StatusInternalServerError, ErrMsgInvalidOutcomeError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
