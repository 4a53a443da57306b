package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordinalab/lexindex/pkg/lexindex"
)

func TestFromError_NilIsOK(t *testing.T) {
	assert.Equal(t, OK, FromError(nil))
}

func TestFromError_ClassifiesEngineSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"no room", lexindex.ErrNoRoom, NoRoom},
		{"empty index", lexindex.ErrEmptyIndex, Usage},
		{"invalid character", lexindex.ErrInvalidCharacter, Usage},
		{"terminal minimum", lexindex.ErrTerminalMinimum, Usage},
		{"not ordered", lexindex.ErrNotOrdered, Usage},
		{"bad alphabet", lexindex.ErrBadAlphabet, Usage},
		{"unclassified", errors.New("something unexpected"), Failure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, FromError(tt.err))
		})
	}
}

func TestFromError_SeesThroughWrapping(t *testing.T) {
	// Given: a sentinel wrapped the way the engine reports it
	_, err := lexindex.Between("C", "B")
	require.Error(t, err)

	// Then: classification works through the %w chain
	assert.Equal(t, Usage, FromError(err))

	wrapped := fmt.Errorf("between failed: %w", err)
	assert.Equal(t, Usage, FromError(wrapped))
}

func TestFromError_RealEngineErrors(t *testing.T) {
	_, noRoom := lexindex.Between("B", "BA")
	require.Error(t, noRoom)
	assert.Equal(t, NoRoom, FromError(noRoom))

	badInput := lexindex.Validate("ab!")
	require.Error(t, badInput)
	assert.Equal(t, Usage, FromError(badInput))
}

func TestWrap_AttachesCode(t *testing.T) {
	err := Wrap(errors.New("could not parse config"), Config)

	assert.Equal(t, Config, FromError(err))
	assert.Equal(t, "could not parse config", err.Error())
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, Config))
}

func TestWrap_PreservesErrorChain(t *testing.T) {
	// Given: a sentinel wrapped with an explicit code
	base := fmt.Errorf("loading: %w", lexindex.ErrBadAlphabet)
	err := Wrap(base, Config)

	// Then: the explicit code wins over sentinel classification
	assert.Equal(t, Config, FromError(err))
	// And: errors.Is still reaches the sentinel
	assert.True(t, errors.Is(err, lexindex.ErrBadAlphabet))
}

func TestFromError_CoderTakesPrecedence(t *testing.T) {
	err := fmt.Errorf("check: %w", Wrap(lexindex.ErrNoRoom, Failure))

	assert.Equal(t, Failure, FromError(err))
}
