package ports

import "context"

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// AddressResolver turns a user-entered postcode into coordinates.
// Fails with an address-not-found error when the postcode cannot be resolved;
// that failure is user-facing, unlike the degradable data adapters.
type AddressResolver interface {
	Resolve(ctx context.Context, postcode string) (Point, error)
}
