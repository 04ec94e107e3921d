package hotspot

import (
	"context"

	"github.com/Rican7/retry"
	"github.com/Rican7/retry/strategy"
)

// ProfileWaiter polls the platform for an active internet connection
// profile with a bounded retry budget. The tethering manager cannot be
// bound until such a profile exists, and at boot one may take a while
// to appear.
type ProfileWaiter struct {
	platform Platform
	budget   RetryBudget
	clock    Clock
	log      Logger
}

// NewProfileWaiter creates a ProfileWaiter governed by budget
func NewProfileWaiter(platform Platform, budget RetryBudget, clk Clock, log Logger) *ProfileWaiter {
	if budget.MaxAttempts < 1 {
		budget.MaxAttempts = 1
	}
	return &ProfileWaiter{
		platform: platform,
		budget:   budget,
		clock:    clk,
		log:      log,
	}
}

// waitStrategy admits the first attempt immediately, then pauses
// budget.Interval before each retry until the budget is spent. All
// pauses go through the injected clock so tests run on simulated time.
func (w *ProfileWaiter) waitStrategy(ctx context.Context) strategy.Strategy {
	return func(attempt uint) bool {
		if attempt == 0 {
			return true
		}
		if int(attempt) >= w.budget.MaxAttempts {
			return false
		}
		return w.clock.Sleep(ctx, w.budget.Interval) == nil
	}
}

// Wait polls for the internet profile until one appears or the budget is
// spent. Exhausting the budget is terminal for the whole toggle run and
// surfaces as ErrNoProfile.
func (w *ProfileWaiter) Wait(ctx context.Context) (ConnectionProfile, error) {
	var profile ConnectionProfile

	err := retry.Retry(func(attempt uint) error {
		p, ok := w.platform.InternetConnectionProfile()
		if !ok {
			w.log.Infof("no internet profile yet (attempt %d/%d)", attempt+1, w.budget.MaxAttempts)
			return ErrNoProfile
		}
		profile = p
		return nil
	}, w.waitStrategy(ctx))

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &OpError{Op: OpProfileWait, Err: ErrNoProfile}
	}

	w.log.Debugf("internet profile %q available", profile.Name())
	return profile, nil
}
