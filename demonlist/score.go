package demonlist

import (
	"fmt"
	"math"

	"CDL/util"

	"gopkg.in/Knetic/govaluate.v2"
)

// Scorer turns a (rank, percent, percentToQualify) triple into list points.
// The base value per rank comes from a configurable formula over x (the
// 1-based position), evaluated once into a lookup table; negative results are
// clamped to 0. Partial progress earns a fraction of the base value.
type Scorer struct {
	points []float64
}

// NewScorer compiles the formula and generates the point table for positions
// 1..generateTo. Positions beyond the table score 0.
func NewScorer(formula string, generateTo int) (*Scorer, error) {
	functions := map[string]govaluate.ExpressionFunction{
		"sqrt": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("sqrt exactly takes one argument")
			}
			value, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("argument must be a float64 for sqrt")
			}
			return math.Sqrt(value), nil
		},
	}
	expression, err := govaluate.NewEvaluableExpressionWithFunctions(formula, functions)
	if err != nil {
		return nil, err
	}
	points := make([]float64, 0, generateTo)
	parameters := make(map[string]interface{}, 1)
	for i := 1; i <= generateTo; i++ {
		parameters["x"] = float64(i)
		result, err := expression.Evaluate(parameters)
		if err != nil {
			return nil, err
		}
		value, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("resulting value is not a float64")
		}
		if value < 0.0 {
			value = 0.0
		}
		points = append(points, value)
	}
	return &Scorer{points: points}, nil
}

// BasePoints is the full value of a completion at the given rank.
func (s *Scorer) BasePoints(rank int) float64 {
	if rank < 1 || rank > len(s.points) {
		return 0
	}
	return s.points[rank-1]
}

// Score computes the points a record at the given percent earns on a level at
// the given rank. Records below the qualify threshold earn nothing; a full
// completion earns the base value; anything in between earns a fraction that
// scales linearly between the threshold and 100.
func (s *Scorer) Score(rank int, percent int, percentToQualify int) float64 {
	if percent < percentToQualify {
		return 0
	}
	base := s.BasePoints(rank)
	if percent == 100 {
		return util.Round(base)
	}
	factor := float64(percent-(percentToQualify-1)) / float64(100-(percentToQualify-1))
	return util.Round(base * factor)
}
