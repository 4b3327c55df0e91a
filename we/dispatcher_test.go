package we

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tally struct {
	Total int
}

type Add struct {
	Amount int `json:"amount"`
}

func testDispatcher() *RoutedDispatcher[tally] {
	var add CommandHandlerFunction[tally, Add] = func(ctx context.Context, cmd Add, state *tally) error {
		state.Total += cmd.Amount
		return nil
	}

	return &RoutedDispatcher[tally]{
		Handlers: CommandHandlers[tally]{
			CommandNameOf(Add{}): add,
		},
	}
}

func dispatchesTypedCommand(t *testing.T) {
	state := tally{}
	err := testDispatcher().Dispatch(context.Background(), &state, Add{Amount: 3})

	require.NoError(t, err)
	assert.Equal(t, 3, state.Total)
}

func dispatchesRemoteCommand(t *testing.T) {
	payload, err := json.Marshal(Add{Amount: 4})
	require.NoError(t, err)

	state := tally{Total: 1}
	err = testDispatcher().Dispatch(context.Background(), &state, RemoteCommand{CommandName: "we:add", Payload: payload})

	require.NoError(t, err)
	assert.Equal(t, 5, state.Total)
}

func dispatchesRemoteCommandWithoutPayload(t *testing.T) {
	state := tally{Total: 1}
	err := testDispatcher().Dispatch(context.Background(), &state, RemoteCommand{CommandName: "we:add"})

	require.NoError(t, err)
	assert.Equal(t, 1, state.Total)
}

func rejectsUnknownCommand(t *testing.T) {
	state := tally{}
	err := testDispatcher().Dispatch(context.Background(), &state, RemoteCommand{CommandName: "we:subtract"})

	assert.Equal(t, CommandNotFound("we:subtract"), err)
	assert.False(t, testDispatcher().Supports("we:subtract"))
	assert.True(t, testDispatcher().Supports("we:add"))
}

func rejectsInvalidPayload(t *testing.T) {
	state := tally{}
	err := testDispatcher().Dispatch(context.Background(), &state, RemoteCommand{CommandName: "we:add", Payload: []byte(`{"amount":"x"}`)})

	assert.Error(t, err)
	assert.Equal(t, 0, state.Total)
}

func TestRoutedDispatcher(t *testing.T) {
	t.Run("dispatches a typed command", dispatchesTypedCommand)
	t.Run("dispatches a remote command", dispatchesRemoteCommand)
	t.Run("dispatches a remote command without payload", dispatchesRemoteCommandWithoutPayload)
	t.Run("rejects an unknown command", rejectsUnknownCommand)
	t.Run("rejects an invalid payload", rejectsInvalidPayload)
}
