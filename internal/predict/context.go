// Package predict holds the prediction context: the fitted feature encoders
// and the hinted and unhinted fold models, loaded once and passed explicitly
// to whatever needs predictions.
package predict

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerhint/internal/config"
	"github.com/lox/pokerhint/internal/features"
	"github.com/lox/pokerhint/poker"
)

// ErrModelNotLoaded is returned when a prediction needs a model the context
// was built without.
var ErrModelNotLoaded = errors.New("model not loaded")

// Class values produced by the fold models.
const (
	ClassPlay = 0
	ClassFold = 1
)

// Prediction is the outcome for one hand.
type Prediction struct {
	Category poker.Category
	Class    int
}

// Fold reports whether the model advises folding.
func (p Prediction) Fold() bool {
	return p.Class == ClassFold
}

// Context owns the encoder and models. It is read-only after construction
// and safe for concurrent use.
type Context struct {
	encoder  *features.Encoder
	hinted   Model
	unhinted Model
	logger   *log.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithHinted sets the model that receives the category column.
func WithHinted(m Model) Option {
	return func(c *Context) { c.hinted = m }
}

// WithUnhinted sets the model that sees only the card columns.
func WithUnhinted(m Model) Option {
	return func(c *Context) { c.unhinted = m }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// New builds a Context. Models whose width does not match the encoder are
// rejected.
func New(opts ...Option) (*Context, error) {
	c := &Context{encoder: features.NewEncoder(), logger: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if c.hinted != nil && c.hinted.Width() != features.HintedWidth {
		return nil, fmt.Errorf("hinted model expects %d features, encoder produces %d", c.hinted.Width(), features.HintedWidth)
	}
	if c.unhinted != nil && c.unhinted.Width() != features.UnhintedWidth {
		return nil, fmt.Errorf("unhinted model expects %d features, encoder produces %d", c.unhinted.Width(), features.UnhintedWidth)
	}
	c.logger = c.logger.WithPrefix("predict")
	return c, nil
}

// Load builds a Context from the models declared in cfg.
func Load(cfg *config.Config, logger *log.Logger) (*Context, error) {
	if logger == nil {
		logger = log.Default()
	}
	opts := []Option{WithLogger(logger)}

	if m := cfg.Model(config.ModelHinted); m != nil {
		model, err := LoadLinearModel(m.Path, features.HintedWidth)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded model", "name", m.Name, "path", m.Path)
		opts = append(opts, WithHinted(model))
	}
	if m := cfg.Model(config.ModelUnhinted); m != nil {
		model, err := LoadLinearModel(m.Path, features.UnhintedWidth)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded model", "name", m.Name, "path", m.Path)
		opts = append(opts, WithUnhinted(model))
	}
	return New(opts...)
}

// Encoder returns the fitted encoder.
func (c *Context) Encoder() *features.Encoder {
	return c.encoder
}

// HasHinted reports whether a hinted model is loaded.
func (c *Context) HasHinted() bool { return c.hinted != nil }

// HasUnhinted reports whether an unhinted model is loaded.
func (c *Context) HasUnhinted() bool { return c.unhinted != nil }

// Predict evaluates the hand and feeds cards plus category to the hinted model.
func (c *Context) Predict(h poker.Hand) (Prediction, error) {
	cat := poker.Evaluate(h)
	if c.hinted == nil {
		return Prediction{Category: cat}, fmt.Errorf("hinted: %w", ErrModelNotLoaded)
	}
	row, err := c.encoder.Hinted(h, cat)
	if err != nil {
		return Prediction{Category: cat}, err
	}
	class, err := c.hinted.Predict(row)
	if err != nil {
		return Prediction{Category: cat}, fmt.Errorf("hinted predict: %w", err)
	}
	c.logger.Debug("Hinted prediction", "hand", h, "category", cat, "class", class)
	return Prediction{Category: cat, Class: class}, nil
}

// PredictUnhinted feeds only the card columns to the unhinted model. The
// category is still reported for display.
func (c *Context) PredictUnhinted(h poker.Hand) (Prediction, error) {
	cat := poker.Evaluate(h)
	if c.unhinted == nil {
		return Prediction{Category: cat}, fmt.Errorf("unhinted: %w", ErrModelNotLoaded)
	}
	class, err := c.unhinted.Predict(c.encoder.Unhinted(h))
	if err != nil {
		return Prediction{Category: cat}, fmt.Errorf("unhinted predict: %w", err)
	}
	c.logger.Debug("Unhinted prediction", "hand", h, "class", class)
	return Prediction{Category: cat, Class: class}, nil
}
