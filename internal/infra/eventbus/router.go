package eventbus

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// EventHandler handles one kind of event from the bus.
type EventHandler interface {
	// HandlerName must be unique per router.
	HandlerName() string
	// EventName returns the event name this handler handles.
	EventName() string
	Handle(ctx context.Context, envelope *EventEnvelope) error
}

// Router dispatches bus messages to event handlers.
type Router struct {
	router   *message.Router
	eventBus *EventBus
	logger   watermill.LoggerAdapter
}

// NewRouter creates a new event router.
func NewRouter(eventBus *EventBus, logger watermill.LoggerAdapter) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	return &Router{
		router:   router,
		eventBus: eventBus,
		logger:   logger,
	}, nil
}

// AddHandler registers an event handler. Handlers must be added before Run.
func (r *Router) AddHandler(handler EventHandler) {
	r.router.AddNoPublisherHandler(
		handler.HandlerName(),
		LinkEventsTopic,
		r.eventBus.Subscriber(),
		r.handlerFunc(handler),
	)
}

func (r *Router) handlerFunc(handler EventHandler) message.NoPublishHandlerFunc {
	return func(msg *message.Message) (err error) {
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error("event handler panicked", fmt.Errorf("%v", p), watermill.LogFields{
					"handler": handler.HandlerName(),
					"uuid":    msg.UUID,
				})
				err = nil
			}
		}()

		if name := msg.Metadata.Get("event_name"); name != "" && name != handler.EventName() {
			return nil
		}

		envelope, err := MessageToEnvelope(msg)
		if err != nil {
			r.logger.Error("dropping malformed event", err, watermill.LogFields{"uuid": msg.UUID})
			return nil
		}
		if envelope.EventName != handler.EventName() {
			return nil
		}

		if err := handler.Handle(msg.Context(), envelope); err != nil {
			r.logger.Error("event handler failed", err, watermill.LogFields{
				"handler":    handler.HandlerName(),
				"event_name": envelope.EventName,
				"event_id":   envelope.EventID,
			})
			// Events are advisory; a failed handler must not redeliver forever.
			return nil
		}
		return nil
	}
}

// Run starts the router and blocks until ctx is done or Close is called.
func (r *Router) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running is closed once the router is consuming.
func (r *Router) Running() chan struct{} {
	return r.router.Running()
}

// Close stops the router.
func (r *Router) Close() error {
	return r.router.Close()
}
