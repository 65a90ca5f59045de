package engine

import "war/experiments/metrics"

type Runner interface {
	// Run plays a game till the mission is complete, no attack is left or the turn cap is reached
	Run() metrics.GameMetric
}
