package we

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type CommandName string

func (name CommandName) String() string {
	return string(name)
}

type Command any

// RemoteCommand is a command that arrived by name, typically from a form
// post or a JSON request, rather than as a typed Go value.
type RemoteCommand struct {
	CommandName CommandName     `json:"command"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

func CommandNameOf(command Command) CommandName {
	var name CommandName
	switch cmd := command.(type) {
	case RemoteCommand:
		name = cmd.CommandName
	case *RemoteCommand:
		name = cmd.CommandName
	default:
		name = CommandName(NameOf(command))
	}

	return name
}

type CommandHandler[T any] interface {
	HandleCommand(ctx context.Context, cmd Command, state *T) error
	HandleRemoteCommand(ctx context.Context, cmd RemoteCommand, state *T) error
}

type CommandHandlerFunction[T any, C any] func(ctx context.Context, cmd C, state *T) error

func (f CommandHandlerFunction[T, C]) HandleCommand(ctx context.Context, cmd Command, state *T) error {
	command, ok := cmd.(C)
	if !ok {
		return UnexpectedCommand(cmd)
	}

	return f(ctx, command, state)
}

func (f CommandHandlerFunction[T, C]) HandleRemoteCommand(ctx context.Context, cmd RemoteCommand, state *T) error {
	var command C

	if len(cmd.Payload) > 0 {
		if err := json.UnmarshalContext(ctx, cmd.Payload, &command); err != nil {
			return errors.Wrapf(err, "invalid payload for %s", cmd.CommandName)
		}
	}

	return f(ctx, command, state)
}

func UnexpectedCommand(command Command) error {
	return errors.Errorf("unexpected command %s", CommandNameOf(command))
}
