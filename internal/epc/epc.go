// Package epc provides the energy-performance-certificate bounded context.
// This file defines the public interfaces exposed to other domains.
package epc

import (
	"context"

	"retrofit_analysis_backend/internal/epc/transport"
)

// EpcService defines the public interface for EPC record lookups.
// Other domains should depend on this interface, not the concrete implementation.
type EpcService interface {
	// GetByAddress fetches the EPC record for an address.
	// Returns nil if the property has no certificate.
	GetByAddress(ctx context.Context, address string) (*transport.EpcRecord, error)
}
