package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buspulse/buspulse/internal/pkg/constants"
	"github.com/buspulse/buspulse/internal/pkg/models"
	natspkg "github.com/buspulse/buspulse/internal/pkg/nats"
)

// NotifyGateway talks to the notification facility over NATS
// request/reply. The facility owns permission state and trigger
// delivery; this gateway only relays.
type NotifyGateway struct {
	natsClient *natspkg.Client
}

// NewNotifyGateway creates a new notification facility gateway
func NewNotifyGateway(natsClient *natspkg.Client) *NotifyGateway {
	return &NotifyGateway{
		natsClient: natsClient,
	}
}

// RequestPermission asks the facility whether alerts may be delivered.
func (g *NotifyGateway) RequestPermission(ctx context.Context) (*models.PermissionReply, error) {
	data, err := g.natsClient.Request(ctx, constants.SubjectNotifyPermission, nil)
	if err != nil {
		return nil, fmt.Errorf("permission request failed: %w", err)
	}

	var reply models.PermissionReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, fmt.Errorf("failed to decode permission reply: %w", err)
	}

	return &reply, nil
}

// RegisterRecurring registers a daily-repeating trigger with the facility.
func (g *NotifyGateway) RegisterRecurring(ctx context.Context, trigger *models.RecurringTrigger) error {
	payload, err := json.Marshal(trigger)
	if err != nil {
		return fmt.Errorf("failed to marshal trigger: %w", err)
	}

	data, err := g.natsClient.Request(ctx, constants.SubjectNotifySchedule, payload)
	if err != nil {
		return fmt.Errorf("trigger registration failed: %w", err)
	}

	var reply models.RegisterReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return fmt.Errorf("failed to decode registration reply: %w", err)
	}
	if reply.Error != "" {
		return errors.New(reply.Error)
	}

	return nil
}
