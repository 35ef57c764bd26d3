package eventbus

import (
	"shortlink/internal/domain/event"

	"github.com/google/wire"
)

// ProviderSet is eventbus providers.
var ProviderSet = wire.NewSet(
	NewKratosLoggerAdapter,
	NewEventBus,
	NewRouter,
	wire.Bind(new(event.Publisher), new(*EventBus)),
)
