package counter

import (
	"context"

	"github.com/weegigs/wee-counter-go/we"
)

type Increment struct{}

type Decrement struct{}

type Reset struct{}

var (
	IncrementCmd = we.CommandNameOf(Increment{})
	DecrementCmd = we.CommandNameOf(Decrement{})
	ResetCmd     = we.CommandNameOf(Reset{})
)

func increment() we.CommandHandler[Widget] {
	var handler we.CommandHandlerFunction[Widget, Increment] = func(ctx context.Context, _ Increment, widget *Widget) error {
		widget.Increment()
		return nil
	}

	return handler
}

func decrement() we.CommandHandler[Widget] {
	var handler we.CommandHandlerFunction[Widget, Decrement] = func(ctx context.Context, _ Decrement, widget *Widget) error {
		widget.Decrement()
		return nil
	}

	return handler
}

func reset() we.CommandHandler[Widget] {
	var handler we.CommandHandlerFunction[Widget, Reset] = func(ctx context.Context, _ Reset, widget *Widget) error {
		widget.Reset()
		return nil
	}

	return handler
}

func CommandHandlers() we.CommandHandlers[Widget] {
	return we.CommandHandlers[Widget]{
		IncrementCmd: increment(),
		DecrementCmd: decrement(),
		ResetCmd:     reset(),
	}
}

func NewDispatcher() *we.RoutedDispatcher[Widget] {
	return &we.RoutedDispatcher[Widget]{Handlers: CommandHandlers()}
}
