package biz

import (
	"context"
	"encoding/json"
	"time"

	"shortlink/internal/domain/event"
	"shortlink/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
)

// Compile-time interface check
var _ eventbus.EventHandler = (*LoggingEventHandler)(nil)

// LoggingEventHandler writes link lifecycle events to the log.
type LoggingEventHandler struct {
	log       *log.Helper
	eventName string
}

// NewLoggingEventHandler creates a new logging event handler.
func NewLoggingEventHandler(logger log.Logger, eventName string) *LoggingEventHandler {
	return &LoggingEventHandler{
		log:       log.NewHelper(logger),
		eventName: eventName,
	}
}

func (h *LoggingEventHandler) HandlerName() string {
	return "logging_handler_" + h.eventName
}

func (h *LoggingEventHandler) EventName() string {
	return h.eventName
}

// Handle logs the event details.
func (h *LoggingEventHandler) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	switch envelope.EventName {
	case event.LinkCreatedName:
		var evt event.LinkCreated
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.log.WithContext(ctx).Infof("[Event] link created: %s -> %s (expires %s)", evt.Code, evt.OriginalURL, evt.ExpiresAt.Format(time.RFC3339))
	case event.LinkClickedName:
		var evt event.LinkClicked
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		if !evt.Counted {
			h.log.WithContext(ctx).Warnf("[Event] link clicked without counting: %s", evt.Code)
			return nil
		}
		h.log.WithContext(ctx).Debugf("[Event] link clicked: %s", evt.Code)
	case event.LinkDeletedName:
		var evt event.LinkDeleted
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.log.WithContext(ctx).Infof("[Event] link deleted: %s", evt.Code)
	case event.LinkExpiredName:
		var evt event.LinkExpired
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.log.WithContext(ctx).Infof("[Event] expired link requested: %s (expired %s)", evt.Code, evt.ExpiredAt.Format(time.RFC3339))
	default:
		h.log.WithContext(ctx).Infof("[Event] %s: %s", envelope.EventName, envelope.AggregateID)
	}
	return nil
}

// RegisterEventHandlers registers all event handlers with the router.
func RegisterEventHandlers(router *eventbus.Router, logger log.Logger) {
	for _, eventName := range event.Names {
		router.AddHandler(NewLoggingEventHandler(logger, eventName))
	}
}
