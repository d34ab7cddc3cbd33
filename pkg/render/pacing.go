package render

import (
	"time"

	"github.com/leterax/go-grass/internal/config"
)

// LegacyFrameDelay is the fixed pause after each frame in legacy pacing.
const LegacyFrameDelay = 50 * time.Millisecond

// Pacer waits at the end of a frame that started at frameStart
type Pacer interface {
	Wait(frameStart time.Time)
}

// NewPacer builds the pacer for the configured mode
func NewPacer(mode config.Pacing, targetFPS int) Pacer {
	switch mode {
	case config.PacingBudget:
		return &budgetPacer{
			budget: time.Second / time.Duration(targetFPS),
			now:    time.Now,
			sleep:  time.Sleep,
		}
	case config.PacingOff:
		return noPacer{}
	default:
		return &fixedPacer{delay: LegacyFrameDelay, sleep: time.Sleep}
	}
}

// fixedPacer sleeps the same amount regardless of how long the frame took
type fixedPacer struct {
	delay time.Duration
	sleep func(time.Duration)
}

func (p *fixedPacer) Wait(time.Time) {
	p.sleep(p.delay)
}

// budgetPacer sleeps only what remains of the frame budget
type budgetPacer struct {
	budget time.Duration
	now    func() time.Time
	sleep  func(time.Duration)
}

func (p *budgetPacer) Wait(frameStart time.Time) {
	remaining := p.budget - p.now().Sub(frameStart)
	if remaining > 0 {
		p.sleep(remaining)
	}
}

type noPacer struct{}

func (noPacer) Wait(time.Time) {}
