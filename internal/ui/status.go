package ui

import (
	"fmt"
	"time"
)

// Status is the frame-level state the HUD reports next to the parameters.
type Status struct {
	FPS       float64
	TPS       float64
	Paused    bool
	Emergency bool
	Cooldown  time.Duration
	Triggers  int
	Shots     int
	Mode      string
	Payload   string
}

// Lines formats the status for display, one entry per row.
func (s Status) Lines() []string {
	run := "running"
	if s.Paused {
		run = "paused"
	}
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f  %s", s.FPS, s.TPS, run),
	}
	if s.Emergency {
		lines = append(lines, fmt.Sprintf("EMERGENCY  cooldown %.1fs", s.Cooldown.Seconds()))
	} else {
		lines = append(lines, "governor steady")
	}
	if s.Triggers > 0 {
		lines = append(lines, fmt.Sprintf("emergencies %d", s.Triggers))
	}
	mode := s.Mode
	if mode == "" {
		mode = "manual"
	}
	lines = append(lines, fmt.Sprintf("scenario %s  shots %d", mode, s.Shots))
	if s.Payload != "" {
		lines = append(lines, "brush "+s.Payload)
	}
	return lines
}

// Tail returns at most n of the newest entries, oldest first.
func Tail(entries []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}

// Truncate shortens s to at most width runes, marking the cut with "..".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width <= 2 {
		return string(r[:width])
	}
	return string(r[:width-2]) + ".."
}

// control describes an integer parameter the HUD can step with buttons.
type control struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

var arenaControls = []control{
	{Key: "wind_strength", Label: "Wind strength", Step: 10, Min: 0, Max: 255},
	{Key: "wind_dx", Label: "Wind dx", Step: 1, Min: -1, Max: 1},
	{Key: "wind_dy", Label: "Wind dy", Step: 1, Min: -1, Max: 1},
	{Key: "reclaim_interval", Label: "Reclaim interval", Step: 5, Min: 1, Max: 600},
}

// step returns the value one step in direction, clamped to the control range,
// and whether it differs from value.
func (c control) step(value, direction int) (int, bool) {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if target < c.Min {
		target = c.Min
	}
	if target > c.Max {
		target = c.Max
	}
	return target, target != value
}
