package service

import (
	"context"
	"log"

	"github.com/inngest/inngestgo"
)

type EventPublisher struct {
	client inngestgo.Client
}

func NewEventPublisher() (*EventPublisher, error) {
	client, err := inngestgo.NewClient(inngestgo.ClientOpts{
		AppID: "waggle-api",
	})
	if err != nil {
		return nil, err
	}
	return &EventPublisher{client: client}, nil
}

// SendActivityDiscovered fires after a discovered activity is stored; the
// verification function picks it up. Best-effort.
func (p *EventPublisher) SendActivityDiscovered(ctx context.Context, activityID, userID, sourceURL string) {
	if p == nil {
		return
	}
	if _, err := p.client.Send(ctx, inngestgo.Event{
		Name: "activity/discovered",
		Data: map[string]any{
			"activity_id": activityID,
			"user_id":     userID,
			"source_url":  sourceURL,
		},
	}); err != nil {
		log.Printf("send activity/discovered: %v", err)
	}
}

// SendScheduleCreated is informational; the progress snapshot cron consumes
// the table directly, but downstream consumers can react to the event.
func (p *EventPublisher) SendScheduleCreated(ctx context.Context, scheduleID, dogID, scheduledDate string) {
	if p == nil {
		return
	}
	if _, err := p.client.Send(ctx, inngestgo.Event{
		Name: "schedule/created",
		Data: map[string]any{
			"schedule_id":    scheduleID,
			"dog_id":         dogID,
			"scheduled_date": scheduledDate,
		},
	}); err != nil {
		log.Printf("send schedule/created: %v", err)
	}
}
