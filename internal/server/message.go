package server

import (
	"errors"

	"github.com/lox/pokerhint/internal/predict"
	"github.com/lox/pokerhint/poker"
)

// MessageType identifies a WebSocket message.
type MessageType string

const (
	// Client → Server
	MessageTypeEvaluate MessageType = "evaluate"

	// Server → Client
	MessageTypeResult MessageType = "result"
	MessageTypeError  MessageType = "error"
)

func (t MessageType) String() string {
	return string(t)
}

// Error codes sent in error messages.
const (
	CodeMalformedCard    = "malformed_card"
	CodeHandSize         = "hand_size"
	CodeDuplicateCard    = "duplicate_card"
	CodeBadRequest       = "bad_request"
	CodeModelUnavailable = "model_unavailable"
)

// Request is a client evaluation request.
type Request struct {
	Type    MessageType `json:"type"`
	ID      string      `json:"id,omitempty"`
	Cards   []string    `json:"cards"`
	Predict bool        `json:"predict,omitempty"`
}

// Response is either a result or an error, depending on Type.
type Response struct {
	Type MessageType `json:"type"`
	ID   string      `json:"id,omitempty"`

	// Result fields
	Category string `json:"category,omitempty"`
	Strength int    `json:"strength,omitempty"`
	Class    *int   `json:"class,omitempty"`

	// Error fields
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewResult builds a result message for a category.
func NewResult(id string, c poker.Category) *Response {
	return &Response{
		Type:     MessageTypeResult,
		ID:       id,
		Category: c.String(),
		Strength: c.Strength(),
	}
}

// NewError builds an error message.
func NewError(id, code, message string) *Response {
	return &Response{Type: MessageTypeError, ID: id, Code: code, Message: message}
}

// errorCode maps an evaluation failure to its wire code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, poker.ErrMalformedCard):
		return CodeMalformedCard
	case errors.Is(err, poker.ErrHandSize):
		return CodeHandSize
	case errors.Is(err, poker.ErrDuplicateCard):
		return CodeDuplicateCard
	case errors.Is(err, predict.ErrModelNotLoaded):
		return CodeModelUnavailable
	default:
		return CodeBadRequest
	}
}
