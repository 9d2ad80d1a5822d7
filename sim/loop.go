package sim

import (
	"context"
	"log"
	"time"
)

// Loop ticks a Sim at a fixed rate without a window.
type Loop struct {
	sim      *Sim
	tickRate int
	stopChan chan struct{}
}

func NewLoop(s *Sim, tickRate int) *Loop {
	return &Loop{
		sim:      s,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until ctx is done, Stop is called or the player quits. Returns ticks run.
func (l *Loop) Run(ctx context.Context) uint64 {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Sim loop started at %d ticks/second", l.tickRate)

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			log.Printf("Sim loop stopped after %d ticks", ticks)
			return ticks
		case <-l.stopChan:
			log.Println("Sim loop stopped")
			return ticks
		case <-ticker.C:
			l.sim.Tick()
			ticks++
			if l.sim.QuitRequested() {
				return ticks
			}
		}
	}
}

func (l *Loop) Stop() {
	close(l.stopChan)
}
