package status_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/igraphgo/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_StringAndSymbol(t *testing.T) {
	assert.Equal(t, "Invalid value", status.InvalidValue.String())
	assert.Equal(t, "IGRAPH_EINVAL", status.InvalidValue.Symbol())
	assert.Equal(t, "Unknown error (999)", status.Code(999).String())
	assert.Equal(t, "IGRAPH_999", status.Code(999).Symbol())
}

func TestCode_Kind(t *testing.T) {
	assert.Nil(t, status.Success.Kind())
	assert.Equal(t, status.ErrUnimplemented, status.Unimplemented.Kind())
	assert.Equal(t, status.ErrOutOfMemory, status.OutOfMemory.Kind())
	assert.Equal(t, status.ErrInterrupted, status.Interrupted.Kind())
	assert.Equal(t, status.ErrNative, status.InvalidValue.Kind())
	assert.Equal(t, status.ErrNative, status.Failure.Kind())
}

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		want status.Code
	}{
		{nil, status.Success},
		{status.ErrUnimplemented, status.Unimplemented},
		{fmt.Errorf("wrapped: %w", status.ErrOutOfMemory), status.OutOfMemory},
		{context.Canceled, status.Interrupted},
		{status.ErrType, status.InvalidValue},
		{status.ErrIllegalArgument, status.InvalidValue},
		{errors.New("plain"), status.Failure},
		{&status.Error{Code: status.InvalidVertexID}, status.InvalidVertexID},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, status.CodeOf(tc.err), "err=%v", tc.err)
	}
}

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("combiner: %w", status.ErrType)
	err := status.NewError(status.Record{
		Message: "Cannot get edge ID, no such edge",
		File:    "src/graph/type_indexededgelist.c",
		Line:    1404,
		Code:    status.InvalidValue,
	}, cause)

	require.Equal(t,
		"Error at src/graph/type_indexededgelist.c:1404: Cannot get edge ID, no such edge -- Invalid value",
		err.Error())
	assert.ErrorIs(t, err, status.ErrNative)
	assert.ErrorIs(t, err, status.ErrType)
	assert.NotErrorIs(t, err, status.ErrInterrupted)
}

func TestState_CheckTranslatesAndClears(t *testing.T) {
	var s status.State
	require.NoError(t, s.Check(status.Success))

	s.Store(status.Record{Message: "boom", File: "a.c", Line: 3, Code: status.Unimplemented})
	err := s.Check(status.Unimplemented)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrUnimplemented)
	assert.True(t, strings.HasPrefix(err.Error(), "Error at a.c:3: boom"))
	assert.True(t, s.Empty())

	_, ok := s.Peek()
	assert.False(t, ok)
}

func TestState_FirstRecordWins(t *testing.T) {
	var s status.State
	s.Store(status.Record{Message: "inner", File: "inner.c", Line: 1, Code: status.InvalidValue})
	s.Store(status.Record{Message: "", File: "outer.c", Line: 9, Code: status.InvalidValue})
	s.Store(status.Record{Message: "outer", File: "outer.c", Line: 10, Code: status.Failure})

	rec, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "inner", rec.Message)

	s.Clear()
	s.Store(status.Record{File: "x.c", Code: status.InvalidValue})
	s.Store(status.Record{Message: "later", File: "y.c", Code: status.InvalidValue})
	rec, _ = s.Peek()
	assert.Equal(t, "later", rec.Message)
}

func TestState_NonzeroWithoutRecord(t *testing.T) {
	var s status.State
	err := s.Check(status.Failure)
	require.ErrorIs(t, err, status.ErrRuntime)

	s.SetCause(status.ErrUnimplemented)
	err = s.Check(status.Failure)
	require.ErrorIs(t, err, status.ErrRuntime)
	require.ErrorIs(t, err, status.ErrUnimplemented)
	assert.True(t, s.Empty())
}

func TestState_CauseSurvivesIntoError(t *testing.T) {
	var s status.State
	sentinel := errors.New("user combiner failed")
	s.SetCause(sentinel)
	s.SetCause(errors.New("second cause is ignored"))
	s.Store(status.Record{Message: "user combiner failed", File: "bridge.c", Line: 40, Code: status.Failure})

	err := s.Check(status.Failure)
	require.ErrorIs(t, err, sentinel)
	var ne *status.Error
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "bridge.c", ne.File)
}
