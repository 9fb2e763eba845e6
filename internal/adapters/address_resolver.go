package adapters

import (
	"context"

	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/geocode"
)

// AddressResolverAdapter exposes the geocode module's postcode resolution to
// the analysis engine.
type AddressResolverAdapter struct {
	svc *geocode.Service
}

func NewAddressResolverAdapter(svc *geocode.Service) *AddressResolverAdapter {
	return &AddressResolverAdapter{svc: svc}
}

func (a *AddressResolverAdapter) Resolve(ctx context.Context, postcode string) (ports.Point, error) {
	coords, err := a.svc.Resolve(ctx, postcode)
	if err != nil {
		return ports.Point{}, err
	}
	return ports.Point{Latitude: coords.Latitude, Longitude: coords.Longitude}, nil
}

var _ ports.AddressResolver = (*AddressResolverAdapter)(nil)
