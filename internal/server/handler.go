package server

import (
	"fmt"

	"github.com/lox/pokerhint/internal/predict"
	"github.com/lox/pokerhint/poker"
)

// Evaluate answers one request. A nil predictor makes every predict request
// fail with model_unavailable.
func Evaluate(req *Request, predictor *predict.Context) *Response {
	if req.Type != MessageTypeEvaluate {
		return NewError(req.ID, CodeBadRequest, fmt.Sprintf("unknown message type %q", req.Type))
	}

	hand, err := poker.ParseHandIDs(req.Cards)
	if err != nil {
		return NewError(req.ID, errorCode(err), err.Error())
	}

	if !req.Predict {
		return NewResult(req.ID, poker.Evaluate(hand))
	}

	if predictor == nil {
		return NewError(req.ID, CodeModelUnavailable, predict.ErrModelNotLoaded.Error())
	}
	p, err := predictor.Predict(hand)
	if err != nil {
		return NewError(req.ID, errorCode(err), err.Error())
	}
	resp := NewResult(req.ID, p.Category)
	resp.Class = &p.Class
	return resp
}
