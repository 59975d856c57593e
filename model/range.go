package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	RangeMin = 0
	RangeMax = 9999
)

var ErrInvalidRange = errors.New("invalid range")

// Range is an inclusive [Start, End] bound on a numeric beatmap attribute.
type Range struct {
	start float64
	end   float64
}

func NewRange(start, end float64) (Range, error) {
	if math.IsNaN(start) || math.IsNaN(end) {
		return Range{}, fmt.Errorf("%w: start and end must be numbers", ErrInvalidRange)
	}
	if start > end {
		return Range{}, fmt.Errorf("%w: start must be less than end", ErrInvalidRange)
	}
	if start < RangeMin || end > RangeMax {
		return Range{}, fmt.Errorf("%w: start and end must be between %d and %d", ErrInvalidRange, RangeMin, RangeMax)
	}
	return Range{start: start, end: end}, nil
}

// MustNewRange is like NewRange but panics on invalid bounds.
func MustNewRange(start, end float64) Range {
	r, err := NewRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRange parses "start~end", e.g. "0~5.5".
func ParseRange(s string) (Range, error) {
	startStr, endStr, ok := strings.Cut(s, "~")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q is not in start~end form", ErrInvalidRange, s)
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(startStr), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(endStr), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return NewRange(start, end)
}

func (r Range) Start() float64 { return r.start }

func (r Range) End() float64 { return r.end }

// String formats the range the way the filter syntax expects: "0~5", "1.5~7".
func (r Range) String() string {
	return strconv.FormatFloat(r.start, 'f', -1, 64) + "~" + strconv.FormatFloat(r.end, 'f', -1, 64)
}
