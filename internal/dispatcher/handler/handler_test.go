package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/linedit/internal/input"
)

func TestHandlerFunc(t *testing.T) {
	var got string
	h := HandlerFunc(func(a input.Action) Result {
		got = a.Name
		return Success()
	})

	r := h.Handle(input.NewAction("file.save"))
	assert.True(t, r.IsOK())
	assert.Equal(t, "file.save", got)

	var nilFunc HandlerFunc
	assert.True(t, nilFunc.Handle(input.NewAction("x")).IsError())
}

func TestResultConstructors(t *testing.T) {
	assert.Equal(t, StatusNoOp, NoOpWithMessage("m").Status)
	assert.Equal(t, "m", NoOpWithMessage("m").Message)
	assert.True(t, Exit().IsExit())
	assert.Equal(t, "insert", Success().WithModeChange("insert").ModeChange)

	err := errors.New("boom")
	assert.ErrorIs(t, Error(err).Error, err)
	assert.EqualError(t, Errorf("bad %d", 1).Error, "bad 1")
	assert.Equal(t, StatusCancelled, CancelledWithMessage("c").Status)
}

func TestResultStatusString(t *testing.T) {
	tests := map[ResultStatus]string{
		StatusOK:          "ok",
		StatusNoOp:        "no-op",
		StatusError:       "error",
		StatusCancelled:   "cancelled",
		StatusExit:        "exit",
		ResultStatus(200): "unknown",
	}
	for s, want := range tests {
		assert.Equal(t, want, s.String())
	}
}
