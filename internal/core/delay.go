package core

import "time"

// Delay is a step-quantized tick interval bounded to [min, max]. It paces
// generation stepping in the interactive loop: Up shortens the interval
// (faster simulation), Down lengthens it.
type Delay struct {
	interval time.Duration
	min      time.Duration
	max      time.Duration
	step     time.Duration
}

// NewDelay constructs a Delay clamped and quantized to the given bounds.
func NewDelay(interval, min, max, step time.Duration) Delay {
	d := Delay{min: min, max: max, step: step}
	d.set(interval)
	return d
}

func (d *Delay) set(v time.Duration) {
	if d.step > 0 {
		v = v / d.step * d.step
	}
	if v < d.min {
		v = d.min
	}
	if v > d.max {
		v = d.max
	}
	d.interval = v
}

// Interval returns the current tick interval.
func (d Delay) Interval() time.Duration { return d.interval }

// Up shortens the interval by one step, flooring at the minimum.
func (d *Delay) Up() { d.set(d.interval - d.step) }

// Down lengthens the interval by one step, capping at the maximum.
func (d *Delay) Down() { d.set(d.interval + d.step) }

// Level maps the interval onto 1..N where N is the fastest setting.
func (d Delay) Level() int {
	if d.step <= 0 {
		return 1
	}
	return int((d.max-d.interval)/d.step) + 1
}

// Levels returns the number of distinct speed settings.
func (d Delay) Levels() int {
	if d.step <= 0 {
		return 1
	}
	return int((d.max-d.min)/d.step) + 1
}
