package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type upstreamErr struct{}

func (upstreamErr) Error() string  { return "provider down" }
func (upstreamErr) Upstream() bool { return true }

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(ErrTokenRequired))
	assert.Equal(t, KindStateConflict, KindOf(fmt.Errorf("verify: %w", ErrDeviceConflict)))
	assert.Equal(t, KindUpstream, KindOf(fmt.Errorf("niches: %w", upstreamErr{})))
	assert.Equal(t, KindInternal, KindOf(errors.New("disk full")))
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrTokenRequired, http.StatusBadRequest},
		{ErrInvalidAssetType, http.StatusBadRequest},
		{ErrTokenNotFound, http.StatusNotFound},
		{ErrNoProduct, http.StatusNotFound},
		{ErrTokenInactive, http.StatusForbidden},
		{ErrDeviceConflict, http.StatusForbidden},
		{ErrTokenExists, http.StatusBadRequest},
		{upstreamErr{}, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("", false).String())
	assert.Equal(t, "info", parseLevel("", true).String())
	assert.Equal(t, "warn", parseLevel("warn", false).String())
	assert.Equal(t, "info", parseLevel("loud", false).String())
}
