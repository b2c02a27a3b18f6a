// Package investing distributes free donation funds between open charity
// projects. Both sides of a transfer expose the same Fund interface, so the
// same distribution runs whether a new project meets waiting donations or a
// new donation meets waiting projects.
package investing

import (
	"context"
	"time"

	"github.com/tvules/cat-charity-fund/internal/domain/managers"
)

// Fund is either side of a transfer: something that collects money up to a
// full amount and closes once it is reached.
type Fund interface {
	RemainingAmount() int64
	AddInvestment(amount int64)
	MarkClosed(at time.Time)
	IsClosed() bool
}

// Distribute moves funds from the sources into target, oldest source first,
// until the target is full or the sources run dry. Each transfer is
// min(remaining target, remaining source); whichever side reaches its full
// amount is closed with the given timestamp. It returns the sources that were
// touched; the target changed iff the result is non-empty.
func Distribute(target Fund, sources []Fund, now time.Time) []Fund {
	var touched []Fund
	if target.IsClosed() {
		return touched
	}
	for _, source := range sources {
		if source.IsClosed() {
			continue
		}
		amount := source.RemainingAmount()
		if remaining := target.RemainingAmount(); remaining < amount {
			amount = remaining
		}
		if amount <= 0 {
			continue
		}

		target.AddInvestment(amount)
		source.AddInvestment(amount)
		if source.RemainingAmount() == 0 {
			source.MarkClosed(now)
		}
		touched = append(touched, source)

		if target.RemainingAmount() == 0 {
			target.MarkClosed(now)
			break
		}
	}
	return touched
}

// Invest runs one distribution and persists every touched object through a
// single session commit, so a partially applied distribution never becomes
// visible.
func Invest(ctx context.Context, sess managers.Session, target Fund, sources []Fund) error {
	touched := Distribute(target, sources, time.Now())
	if len(touched) == 0 {
		return nil
	}
	sess.Add(target)
	for _, source := range touched {
		sess.Add(source)
	}
	return sess.Commit(ctx)
}
