package football

import (
	"context"

	"github.com/karimfs/matchday/internal/models"
)

// ClientInterface defines the interface for match data provider operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	FetchEvents(ctx context.Context, from, to string) ([]models.Match, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
