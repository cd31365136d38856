package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/buspulse/buspulse/internal/pkg/constants"
	"github.com/buspulse/buspulse/internal/pkg/logger"
	"github.com/buspulse/buspulse/internal/pkg/models"
	natspkg "github.com/buspulse/buspulse/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the telemetry service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishFixReceived publishes a fix received event
func (g *NATSGateway) PublishFixReceived(ctx context.Context, event *models.FixReceivedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal fix event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectFixReceived, data); err != nil {
		return fmt.Errorf("failed to publish fix event: %w", err)
	}

	logger.Debug("Published fix received event",
		logger.String("device_id", event.DeviceID))

	return nil
}
