package main

import (
	"github.com/montanaflynn/stats"
)

// mobility summarizes how many moves were available before each ply.
type mobility struct {
	Plies        int
	Mean         float64
	Median       float64
	Percentile80 float64
	Max          float64
}

func summarize(plays []Play) (mobility, error) {
	if len(plays) == 0 {
		return mobility{}, nil
	}
	counts := make([]int, 0, len(plays))
	for _, play := range plays {
		counts = append(counts, play.Mobility)
	}
	data := stats.LoadRawData(counts)
	summary := mobility{Plies: len(plays)}
	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return mobility{}, err
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return mobility{}, err
	}
	if summary.Percentile80, err = stats.Percentile(data, 80); err != nil {
		return mobility{}, err
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return mobility{}, err
	}
	return summary, nil
}
