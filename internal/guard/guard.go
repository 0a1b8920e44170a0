// Package guard enforces optional call-volume limits on tool usage.
package guard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrLimited marks a call denied by a configured limit.
var ErrLimited = errors.New("call limit exceeded")

type toolState struct {
	count   int
	limiter *rate.Limiter
}

// Guard tracks per-tool call counts and rates. Zero values disable the
// corresponding limit.
type Guard struct {
	mu            sync.Mutex
	byTool        map[string]*toolState
	maxTotal      int
	ratePerMinute int
}

// New creates a Guard. maxTotal caps calls per tool for the process
// lifetime; ratePerMinute caps the sustained call rate per tool.
func New(maxTotal, ratePerMinute int) *Guard {
	return &Guard{
		byTool:        make(map[string]*toolState),
		maxTotal:      maxTotal,
		ratePerMinute: ratePerMinute,
	}
}

// Allow records one call for tool and returns ErrLimited when a limit is hit.
func (g *Guard) Allow(tool string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := g.byTool[tool]
	if state == nil {
		state = &toolState{}
		if g.ratePerMinute > 0 {
			state.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(g.ratePerMinute)), g.ratePerMinute)
		}
		g.byTool[tool] = state
	}

	if g.maxTotal > 0 && state.count >= g.maxTotal {
		return fmt.Errorf("%w: %s reached the maximum of %d calls", ErrLimited, tool, g.maxTotal)
	}
	if state.limiter != nil && !state.limiter.Allow() {
		return fmt.Errorf("%w: %s exceeded %d calls per minute", ErrLimited, tool, g.ratePerMinute)
	}

	state.count++
	return nil
}
