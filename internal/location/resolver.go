// Package location decides which place a weather lookup should be made for.
package location

import (
	"context"
	"errors"
	"strings"
)

// ConsentScope is the device permission needed to read the postal code.
const ConsentScope = "read::alexa:device:all:address:country_and_postal_code"

// ErrPermissionRequired is returned when no location was spoken and the
// device postal code could not be read. Callers ask for ConsentScope.
var ErrPermissionRequired = errors.New("device location permission required")

// Device identifies the speaker and how to reach its settings API.
type Device struct {
	ID          string
	APIEndpoint string
	AccessToken string
}

// Query carries the optional spoken slots and the device fallback.
type Query struct {
	ZipCode string
	City    string
	Device  Device
}

// DeviceLocator reads the postal code configured on a device. ok is false
// whenever the code is unavailable, permission denials included.
type DeviceLocator interface {
	PostalCode(ctx context.Context, d Device) (code string, ok bool)
}

// Resolver picks a location with priority zip code > city > device.
type Resolver struct {
	devices DeviceLocator
}

func NewResolver(devices DeviceLocator) *Resolver {
	return &Resolver{devices: devices}
}

// Resolve returns a location string for the weather provider, or
// ErrPermissionRequired. The device is only consulted when neither slot is set.
func (r *Resolver) Resolve(ctx context.Context, q Query) (string, error) {
	if zip := strings.TrimSpace(q.ZipCode); zip != "" {
		return zip, nil
	}
	if city := strings.TrimSpace(q.City); city != "" {
		return city, nil
	}

	if r.devices == nil {
		return "", ErrPermissionRequired
	}
	code, ok := r.devices.PostalCode(ctx, q.Device)
	if !ok {
		return "", ErrPermissionRequired
	}
	return code, nil
}
