package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("client.HomeworkStatuses: %w", Endpoint("request failed", errors.New("connection refused")))

	assert.ErrorIs(t, err, ErrEndpoint)
	assert.NotErrorIs(t, err, ErrDelivery)
	assert.Equal(t, KindEndpoint, KindOf(err))
}

func TestError_Expected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "missing optional key", err: MissingOptionalKey("current_date"), want: true},
		{name: "delivery", err: Delivery("text", errors.New("telegram: chat not found")), want: true},
		{name: "endpoint", err: Endpoint("bad response", nil), want: false},
		{name: "type mismatch", err: TypeMismatch("response is not an object"), want: false},
		{name: "missing field", err: MissingField("status"), want: false},
		{name: "unknown status", err: UnknownStatus("lost"), want: false},
		{name: "configuration", err: Configuration(errors.New("no token")), want: false},
		{name: "foreign error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpected(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{
		Kind:       KindEndpoint,
		Msg:        "homework statuses request failed",
		StatusCode: http.StatusInternalServerError,
		Reason:     http.StatusText(http.StatusInternalServerError),
	}

	assert.Equal(t, "homework statuses request failed: status 500 Internal Server Error", err.Error())
	assert.Equal(t, "unexpected homework status `lost`", UnknownStatus("lost").Error())
	assert.Equal(t, "delivery", (&Error{Kind: KindDelivery}).Error())
}
