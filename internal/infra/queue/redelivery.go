package queue

import "time"

// Redelivery bounds how often a failing delivery is handed out again.
type Redelivery struct {
	// MaxDeliveries counts the first delivery.
	MaxDeliveries int
	// Delay is the memory queue's wait before a failed delivery is requeued.
	Delay time.Duration
	// ClaimIdle is how long a stream entry stays pending before any consumer
	// of the group claims it, and how often claiming runs.
	ClaimIdle time.Duration
}

func DefaultRedelivery() Redelivery {
	return Redelivery{
		MaxDeliveries: 5,
		Delay:         time.Second,
		ClaimIdle:     30 * time.Second,
	}
}

func (r Redelivery) withDefaults() Redelivery {
	def := DefaultRedelivery()
	if r.MaxDeliveries <= 0 {
		r.MaxDeliveries = def.MaxDeliveries
	}
	if r.Delay < 0 {
		r.Delay = 0
	}
	if r.ClaimIdle <= 0 {
		r.ClaimIdle = def.ClaimIdle
	}
	return r
}
