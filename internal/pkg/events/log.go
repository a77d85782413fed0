package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

type LogPublisher struct {
	log *logrus.Logger
}

func NewLogPublisher(log *logrus.Logger) *LogPublisher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.log.WithFields(logrus.Fields{
		"event_id": event.ID.String(),
		"type":     event.Type,
		"user_id":  event.UserID,
		"payload":  event.Payload,
	}).Info("event published")
	return nil
}

func (p *LogPublisher) Close() error { return nil }
