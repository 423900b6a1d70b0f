package convert

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"unitconv/internal/config"
	"unitconv/internal/graph"
	xlog "unitconv/internal/log"
	"unitconv/internal/unit"
)

// Converter converts values between configured units.
type Converter struct {
	registry *unit.Registry
	graph    *graph.Graph
	logger   *zap.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used during construction and conversion.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		c.logger = xlog.OrNop(l)
	}
}

// New builds a converter from cfg. It fails on the first unit or edge that
// cannot be added; use config.Validate to collect every problem at once.
func New(cfg *config.File, opts ...Option) (*Converter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", config.ErrInvalidConfiguration)
	}

	c := &Converter{
		registry: config.NewRegistry(cfg),
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	for i, def := range cfg.Units {
		id, err := c.registry.Register(def.Name, def.Aliases, def.Intermediate)
		if err != nil {
			return nil, fmt.Errorf("units[%d]: %w", i, err)
		}

		c.logger.Debug("unit registered",
			zap.String("unit", def.Name),
			zap.Int("id", int(id)),
			zap.Strings("aliases", def.Aliases))
	}

	c.graph = graph.New(c.registry.Len())

	conversions := cfg.Conversions()
	for _, conv := range conversions {
		if err := c.addConfigured(conv); err != nil {
			return nil, fmt.Errorf("%s: %w", conv.Location, err)
		}
	}

	// Inverses go last so that any explicitly configured reverse edge,
	// wherever it appears in the file, wins over a generated one.
	for _, conv := range conversions {
		if !conv.OneWay {
			c.addInverse(conv)
		}
	}

	c.logger.Debug("conversion graph built",
		zap.Int("units", c.graph.Len()),
		zap.Int("edges", c.graph.EdgeCount()))

	return c, nil
}

// Load reads, validates and builds a converter from a config file.
func Load(path string, opts ...Option) (*Converter, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if err := config.Check(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return New(cfg, opts...)
}

func (c *Converter) addConfigured(conv config.Conversion) error {
	if conv.Value == nil {
		return fmt.Errorf("%w: missing %s value", config.ErrInvalidConfiguration, conv.Kind)
	}

	from, err := c.registry.Resolve(conv.From)
	if err != nil {
		return err
	}

	to, err := c.registry.Resolve(conv.To)
	if err != nil {
		return err
	}

	t := config.TransformOf(conv)
	if err := c.graph.AddEdge(from, to, t); err != nil {
		var dup *graph.DuplicateEdgeError
		if errors.As(err, &dup) {
			return fmt.Errorf("conversion %q -> %q defined twice: %w", conv.From, conv.To, err)
		}

		return err
	}

	c.logger.Debug("edge added",
		zap.String("from", conv.From),
		zap.String("to", conv.To),
		zap.Stringer("transform", t))

	return nil
}

// addInverse is only called after every configured edge was added, so both
// endpoints resolve.
func (c *Converter) addInverse(conv config.Conversion) {
	from, _ := c.registry.Resolve(conv.From)
	to, _ := c.registry.Resolve(conv.To)

	if c.graph.HasEdge(to, from) {
		c.logger.Debug("inverse edge skipped, reverse pair already defined",
			zap.String("from", conv.To),
			zap.String("to", conv.From))

		return
	}

	inv := config.TransformOf(conv).Inverse()
	if err := c.graph.AddEdgeWithOrigin(to, from, inv, graph.OriginInverse); err != nil {
		// Only reachable for factors whose reciprocal overflows.
		c.logger.Warn("inverse edge not added",
			zap.String("from", conv.To),
			zap.String("to", conv.From),
			zap.Error(err))
	}
}

// Convert converts value from one unit to another, both given by name or
// alias.
func (c *Converter) Convert(value float64, from, to string) (float64, error) {
	p, err := c.resolve(from, to)
	if err != nil {
		return 0, err
	}

	result := graph.Apply(p, value)

	c.logger.Debug("converted",
		zap.Float64("value", value),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("steps", len(p)),
		zap.Float64("result", result))

	return result, nil
}

// Step is one edge of a resolved path, with unit names filled in.
type Step struct {
	From      string
	To        string
	Transform graph.Transform
	Origin    graph.Origin
}

// Path returns the steps Convert would apply between two units.
func (c *Converter) Path(from, to string) ([]Step, error) {
	p, err := c.resolve(from, to)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, len(p))
	for i, e := range p {
		steps[i] = Step{
			From:      c.registry.Unit(e.From).Name,
			To:        c.registry.Unit(e.To).Name,
			Transform: e.Transform,
			Origin:    e.Origin,
		}
	}

	return steps, nil
}

func (c *Converter) resolve(from, to string) (graph.Path, error) {
	src, err := c.registry.Resolve(from)
	if err != nil {
		return nil, err
	}

	dst, err := c.registry.Resolve(to)
	if err != nil {
		return nil, err
	}

	p, err := graph.FindPath(c.graph, src, dst)
	if err != nil {
		return nil, &NoPathError{From: from, To: to, Cause: err}
	}

	return p, nil
}

// Contains reports whether name resolves to a unit.
func (c *Converter) Contains(name string) bool {
	return c.registry.Contains(name)
}

// Units returns the units meant for users: everything except intermediate
// units, in configuration order.
func (c *Converter) Units() []unit.Unit {
	var out []unit.Unit
	for _, u := range c.registry.Units() {
		if !u.Intermediate {
			out = append(out, u)
		}
	}

	return out
}

// Graph exposes the underlying graph for inspection. It must not be
// modified.
func (c *Converter) Graph() *graph.Graph {
	return c.graph
}

// Registry exposes the underlying registry for inspection.
func (c *Converter) Registry() *unit.Registry {
	return c.registry
}
