// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package cable

import "math"

// ReducerMode selects how Reduce combines a batch of per-device values read
// from a single logic type across every device on a network (spec §4.3).
type ReducerMode int

const (
	// Average is the arithmetic mean of the batch, or 0 for an empty batch.
	Average ReducerMode = iota
	// Sum is the total of the batch.
	Sum
	// Minimum is the smallest value in the batch.
	Minimum
	// Maximum is the largest value in the batch.
	Maximum
	// Force returns the first device to answer: if any device can return,
	// return first.
	Force
	// Partial is the arithmetic mean over the devices that answered; 0 if
	// none did.
	Partial
)

// String returns the reducer's canonical name.
func (m ReducerMode) String() string {
	switch m {
	case Average:
		return "Average"
	case Sum:
		return "Sum"
	case Minimum:
		return "Minimum"
	case Maximum:
		return "Maximum"
	case Force:
		return "Force"
	case Partial:
		return "Partial"
	default:
		return "Unknown"
	}
}

// Reduce combines values according to m. An empty batch always reduces to
// 0, regardless of mode.
func (m ReducerMode) Reduce(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	switch m {
	case Average:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	case Sum:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum
	case Minimum:
		min := math.NaN()
		for _, v := range values {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(min) || v < min {
				min = v
			}
		}
		if math.IsNaN(min) {
			return 0
		}
		return min
	case Maximum:
		max := math.NaN()
		for _, v := range values {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(max) || v > max {
				max = v
			}
		}
		if math.IsNaN(max) {
			return 0
		}
		return max
	case Force:
		return values[0]
	case Partial:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	default:
		return 0
	}
}
