package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhint/internal/predict"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      Request
		category string
		strength int
		code     string
	}{
		{"full house", Request{Type: MessageTypeEvaluate, Cards: []string{"Kc", "Kd", "Kh", "7s", "7c"}}, "Full House", 7, ""},
		{"seven cards", Request{Type: MessageTypeEvaluate, Cards: []string{"2c", "3d", "4h", "5s", "9c", "Kd", "Ah"}}, "Straight", 5, ""},
		{"lowercase ids", Request{Type: MessageTypeEvaluate, Cards: []string{"ah", "ad"}}, "One Pair", 2, ""},
		{"malformed", Request{Type: MessageTypeEvaluate, Cards: []string{"Zz", "Ad"}}, "", 0, CodeMalformedCard},
		{"too many", Request{Type: MessageTypeEvaluate, Cards: []string{"2c", "3c", "4c", "5c", "6c", "7c", "8c", "9c"}}, "", 0, CodeHandSize},
		{"empty", Request{Type: MessageTypeEvaluate}, "", 0, CodeHandSize},
		{"duplicate", Request{Type: MessageTypeEvaluate, Cards: []string{"Qh", "qh"}}, "", 0, CodeDuplicateCard},
		{"unknown type", Request{Type: "ping"}, "", 0, CodeBadRequest},
		{"predict without models", Request{Type: MessageTypeEvaluate, Cards: []string{"Qh", "Jh"}, Predict: true}, "", 0, CodeModelUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := Evaluate(&tt.req, nil)
			if tt.code != "" {
				assert.Equal(t, MessageTypeError, resp.Type)
				assert.Equal(t, tt.code, resp.Code)
				assert.NotEmpty(t, resp.Message)
				return
			}
			assert.Equal(t, MessageTypeResult, resp.Type)
			assert.Equal(t, tt.category, resp.Category)
			assert.Equal(t, tt.strength, resp.Strength)
		})
	}
}

func TestEvaluateMissingHintedModel(t *testing.T) {
	t.Parallel()
	p, err := predict.New(predict.WithLogger(testLogger()))
	require.NoError(t, err)

	resp := Evaluate(&Request{Type: MessageTypeEvaluate, ID: "x", Cards: []string{"As", "Kd"}, Predict: true}, p)
	assert.Equal(t, CodeModelUnavailable, resp.Code)
	assert.Equal(t, "x", resp.ID)
}

func TestEvaluatePredict(t *testing.T) {
	t.Parallel()
	resp := Evaluate(&Request{Type: MessageTypeEvaluate, Cards: []string{"9s", "9h", "9d", "4c"}, Predict: true}, foldPredictor(t))
	require.Equal(t, MessageTypeResult, resp.Type)
	assert.Equal(t, "Three of a Kind", resp.Category)
	require.NotNil(t, resp.Class)
	assert.Equal(t, predict.ClassFold, *resp.Class)
}

func TestEvaluateShortHandShapes(t *testing.T) {
	t.Parallel()
	tests := map[string][]string{
		"High Card": {"7c", "7d", "7h", "7s"},
		"One Pair":  {"7c", "7d", "2h", "2s"},
	}
	for want, cards := range tests {
		resp := Evaluate(&Request{Type: MessageTypeEvaluate, Cards: cards}, nil)
		assert.Equal(t, want, resp.Category, "%v", cards)
	}
}
