package hotspot

import (
	"context"
	"fmt"
)

// RadioController resolves the WiFi radio and drives its power state.
// Radio handles go stale after operations with radio side effects, so
// consequential decisions re-read state through a freshly resolved
// handle rather than trusting a cached one.
type RadioController struct {
	platform Platform
	bridge   *Bridge
	log      Logger
}

// NewRadioController creates a RadioController on top of platform
func NewRadioController(platform Platform, bridge *Bridge, log Logger) *RadioController {
	return &RadioController{
		platform: platform,
		bridge:   bridge,
		log:      log,
	}
}

// FindWifiRadio requests radio access and resolves the WiFi radio from
// the platform's enumeration. The first WiFi-kind radio wins; additional
// WiFi radios, if any, are ignored beyond enumeration order.
func (rc *RadioController) FindWifiRadio(ctx context.Context) (Radio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	access, err := rc.platform.RequestRadioAccess()
	if err != nil {
		return nil, &OpError{Op: OpRadioAccess, Err: err}
	}
	if access != AccessAllowed {
		return nil, &OpError{Op: OpRadioAccess, Err: fmt.Errorf("%w (%s)", ErrRadioAccessDenied, access)}
	}

	radios, err := rc.platform.Radios()
	if err != nil {
		return nil, &OpError{Op: OpRadioFind, Err: err}
	}

	for _, r := range radios {
		if r.Kind() == RadioKindWiFi {
			rc.log.Debugf("resolved wifi radio %q (state %s)", r.Name(), r.State())
			return r, nil
		}
	}

	return nil, &OpError{Op: OpRadioFind, Err: ErrRadioNotFound}
}

// SetState requests a radio power state change and awaits its
// completion. Failure is reported, not raised: the caller decides
// whether a failed state change is fatal to its sequence.
func (rc *RadioController) SetState(ctx context.Context, radio Radio, target RadioState) bool {
	rc.log.Infof("setting radio %q state to %s", radio.Name(), target)

	if err := rc.bridge.Await(ctx, radio.SetState(target)); err != nil {
		rc.log.Warnf("radio %q set-state %s failed: %v", radio.Name(), target, err)
		return false
	}
	return true
}

// Refresh re-enumerates the radios and re-resolves the same radio by
// name, returning a fresh handle. Used after indirect state changes
// caused by tethering side effects.
func (rc *RadioController) Refresh(ctx context.Context, radio Radio) (Radio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	radios, err := rc.platform.Radios()
	if err != nil {
		return nil, &OpError{Op: OpRadioRefresh, Err: err}
	}

	name := radio.Name()
	for _, r := range radios {
		if r.Kind() == RadioKindWiFi && r.Name() == name {
			return r, nil
		}
	}

	return nil, &OpError{Op: OpRadioRefresh, Err: ErrRadioNotFound}
}
