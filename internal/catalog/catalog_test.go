package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/batatacode/internal/encoder"
)

func TestGeneratedSetsAreSorted(t *testing.T) {
	t.Parallel()
	for _, names := range [][]string{
		EventIDs.Names(),
		GameValueIDs.Names(),
		ValueTypes.Names(),
		ActionIDs.Names(),
		ActionTypes.Names(),
		ActionObjects.Names(),
		ArgTypes.Names(),
	} {
		assert.IsIncreasing(t, names)
	}
}

func TestActionIDTagWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint32(11), ActionIDs.Enum().TagWidth())
	assert.Equal(t, uint32(encoder.DefaultTagWidth), EventIDs.Enum().TagWidth())

	res, err := encoder.Encode(ActionIDIfVariableEquals)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), res.Stream.Len())
	assert.Equal(t, []byte{0x05, 0x00}, res.Stream.Bytes())
}

func TestEventIDEncodesAs32BitTag(t *testing.T) {
	t.Parallel()
	res, err := encoder.Encode(EventIDPlayerJoin)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x00, 0x00, 0x00}, res.Stream.Bytes())
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()
	var id ActionID
	require.NoError(t, json.Unmarshal([]byte(`"player_send_message"`), &id))
	assert.Equal(t, ActionIDPlayerSendMessage, id)

	out, err := json.Marshal(id)
	require.NoError(t, err)
	assert.JSONEq(t, `"player_send_message"`, string(out))
}

func TestUnknownIdentifier(t *testing.T) {
	t.Parallel()
	var id EventID
	err := id.UnmarshalText([]byte("player_fly"))
	require.ErrorIs(t, err, ErrUnknownIdentifier)
	assert.Contains(t, err.Error(), "EventID")
}

func TestNameOutOfRange(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ActionType(9)", ActionType(9).String())
	_, err := ActionType(9).MarshalText()
	require.Error(t, err)
}

func TestNewSetRejectsDuplicates(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() {
		NewSet[uint8]("Dup", []string{"a", "a"})
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()
	v, ok := ArgTypes.Lookup("location")
	require.True(t, ok)
	assert.Equal(t, ArgTypeLocation, v)
	assert.Equal(t, "location", v.String())

	_, ok = ArgTypes.Lookup("nope")
	assert.False(t, ok)
}
