package config

import (
	"errors"
	"fmt"
)

// ConstraintError reports a violated cross-option constraint.
type ConstraintError struct {
	Constraint string // constraint name, e.g. "min-q-le-max-q"
	Option     string // offending option field name
	Msg        string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s", e.Option, e.Msg)
}

// Constraint is a named check over a complete configuration.
type Constraint struct {
	Name  string
	Check func(c *Config) *ConstraintError
}

// Constraints returns the cross-option checks applied by Validate, in order.
func Constraints() []Constraint {
	return []Constraint{
		{Name: "min-q-le-max-q", Check: checkQuantizerOrder},
		{Name: "target-quality-range", Check: checkTargetQualityRange},
		{Name: "probes-with-target-quality", Check: checkProbes},
		{Name: "probing-rate-positive", Check: checkProbingRate},
	}
}

// Validate checks if the configuration is internally consistent.
// Every violation is reported; the result unwraps to *ConstraintError values.
func (c *Config) Validate() error {
	var errs []error
	for _, constraint := range Constraints() {
		if ce := constraint.Check(c); ce != nil {
			ce.Constraint = constraint.Name
			errs = append(errs, ce)
		}
	}
	return errors.Join(errs...)
}

// QuantizerUnused reports whether min_q or max_q is set while
// target_quality is not. The quantizer bounds are accepted but ignored then.
func (c *Config) QuantizerUnused() bool {
	return (c.MinQ.IsSet() || c.MaxQ.IsSet()) && !c.TargetQuality.IsSet()
}

func checkQuantizerOrder(c *Config) *ConstraintError {
	minQ, okMin := c.MinQ.Get()
	maxQ, okMax := c.MaxQ.Get()
	if okMin && okMax && minQ > maxQ {
		return &ConstraintError{
			Option: "min_q",
			Msg:    fmt.Sprintf("min q %d must not exceed max q %d", minQ, maxQ),
		}
	}
	return nil
}

func checkTargetQualityRange(c *Config) *ConstraintError {
	tq, ok := c.TargetQuality.Get()
	if ok && (tq <= 0 || tq > 100) {
		return &ConstraintError{
			Option: "target_quality",
			Msg:    fmt.Sprintf("VMAF target %g must be in (0, 100]", tq),
		}
	}
	return nil
}

func checkProbes(c *Config) *ConstraintError {
	if c.TargetQuality.IsSet() && c.Probes == 0 {
		return &ConstraintError{Option: "probes", Msg: "target quality needs at least one probe"}
	}
	return nil
}

func checkProbingRate(c *Config) *ConstraintError {
	if c.ProbingRate == 0 {
		return &ConstraintError{Option: "probing_rate", Msg: "must be at least 1 (1 = every frame)"}
	}
	return nil
}
