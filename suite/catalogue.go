// Package suite is the signal catalogue: an ordered, fixed list of strategies
// that classify the latest bar of a series using the indicator packages.
package suite

import (
	"fmt"

	"github.com/evdnx/gosignal/config"
	"github.com/evdnx/gosignal/errors"
	"github.com/evdnx/gosignal/indicator/core"
)

// Catalogue holds the strategies in insertion order. It is built once and
// never mutated, so a single Catalogue may be shared between goroutines as
// long as its Reporter is safe for concurrent use.
type Catalogue struct {
	strategies []Strategy
	index      map[string]int
	reporter   Reporter
}

// Option customises a Catalogue at construction.
type Option func(*Catalogue)

// WithReporter sets the collaborator that receives strategy failures.
func WithReporter(r Reporter) Option {
	return func(c *Catalogue) {
		if r != nil {
			c.reporter = r
		}
	}
}

// New validates cfg and builds the catalogue.
func New(cfg config.IndicatorConfig, opts ...Option) (*Catalogue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build catalogue: %w", err)
	}
	c := &Catalogue{
		strategies: strategies(cfg),
		reporter:   NopReporter{},
	}
	c.index = make(map[string]int, len(c.strategies))
	for i, st := range c.strategies {
		c.index[st.Name] = i
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewDefault builds the catalogue with config.DefaultConfig.
func NewDefault(opts ...Option) (*Catalogue, error) {
	return New(config.DefaultConfig(), opts...)
}

// Strategies returns a copy of the ordered strategy list.
func (c *Catalogue) Strategies() []Strategy {
	out := make([]Strategy, len(c.strategies))
	copy(out, c.strategies)
	return out
}

func (c *Catalogue) Len() int { return len(c.strategies) }

// Names returns the strategy names in catalogue order.
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.strategies))
	for i, st := range c.strategies {
		names[i] = st.Name
	}
	return names
}

// Lookup finds a strategy by its exact name.
func (c *Catalogue) Lookup(name string) (Strategy, error) {
	i, ok := c.index[name]
	if !ok {
		return Strategy{}, errors.Newf(errors.ErrCodeStrategyNotFound, "strategy %q not found", name)
	}
	return c.strategies[i], nil
}

// Evaluate runs one strategy inside the recovery boundary. The error is only
// non-nil for an unknown name; evaluation failures come back as an Error
// result.
func (c *Catalogue) Evaluate(name string, s core.Series) (Result, error) {
	st, err := c.Lookup(name)
	if err != nil {
		return Result{}, err
	}
	return c.run(st, s), nil
}

// EvaluateAll returns one result per strategy, in catalogue order. A failing
// strategy yields an Error result and does not stop the others.
func (c *Catalogue) EvaluateAll(s core.Series) []Result {
	results := make([]Result, len(c.strategies))
	for i, st := range c.strategies {
		results[i] = c.run(st, s)
	}
	return results
}

func (c *Catalogue) run(st Strategy, s core.Series) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			c.reporter.Report(st.Name, errors.Wrap(errors.ErrCodeStrategyRuntimeError, "strategy panicked", err))
			res = errorResult(st.label)
		}
	}()

	res, err := st.rule(s)
	if err != nil {
		c.reporter.Report(st.Name, err)
		return errorResult(st.label)
	}
	return res
}
