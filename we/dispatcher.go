package we

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
)

const tracerName = "wee-counter"

type CommandHandlers[T any] map[CommandName]CommandHandler[T]

type Dispatcher[T any] interface {
	Dispatch(ctx context.Context, state *T, command Command) error
}

// RoutedDispatcher applies a command to state in place, using the handler
// registered under the command's name.
type RoutedDispatcher[T any] struct {
	Handlers CommandHandlers[T]
}

func (d *RoutedDispatcher[T]) Dispatch(ctx context.Context, state *T, command Command) error {
	commandName := CommandNameOf(command)

	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("dispatch %s", commandName))
	defer span.End()

	handler := d.Handlers[commandName]
	if handler == nil {
		return CommandNotFound(commandName)
	}

	switch cmd := command.(type) {
	case RemoteCommand:
		return handler.HandleRemoteCommand(ctx, cmd, state)
	case *RemoteCommand:
		return handler.HandleRemoteCommand(ctx, *cmd, state)
	default:
		return handler.HandleCommand(ctx, cmd, state)
	}
}

// Supports reports whether a handler is registered for name.
func (d *RoutedDispatcher[T]) Supports(name CommandName) bool {
	_, ok := d.Handlers[name]
	return ok
}

func CommandNotFound(command CommandName) CommandNotFoundError {
	return CommandNotFoundError{Command: command}
}

type CommandNotFoundError struct {
	Command CommandName
}

func (e CommandNotFoundError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Command)
}
