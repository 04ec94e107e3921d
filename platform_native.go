package hotspot

import "fmt"

// NativePlatform returns the host's tethering and radio bindings.
// Builds without native bindings fail fast with ErrBridgeUnavailable;
// callers fall back to SimulatedPlatform or supply their own Platform.
func NativePlatform() (Platform, error) {
	return nil, fmt.Errorf("hotspot: no native tethering bindings in this build: %w", ErrBridgeUnavailable)
}
