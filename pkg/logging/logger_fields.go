package logging

import (
	"fmt"
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component field helpers for common component names
func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

// Simulation field helpers

func RunID(id string) Field {
	return String("run_id", id)
}

func Reduction(name string) Field {
	return String("reduction", name)
}

func Trial(n int) Field {
	return Int("trial", n)
}

func Trials(n int) Field {
	return Int("trials", n)
}

func Probability(p float64) Field {
	return Float64("probability", p)
}

func Pair(head, tail string) Field {
	return String("pair", fmt.Sprintf("%s-%s", head, tail))
}

func Dimension(name string) Field {
	return String("dimension", name)
}

func Workers(n int) Field {
	return Int("workers", n)
}

func Nodes(n int) Field {
	return Int("nodes", n)
}

func Edges(n int) Field {
	return Int("edges", n)
}

func Seed(s int64) Field {
	return Int64("seed", s)
}
