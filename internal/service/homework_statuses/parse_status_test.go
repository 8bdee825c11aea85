package homework_statuses

import (
	"testing"

	"github.com/ilyadubrovsky/homework-bot/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{
			status: "approved",
			want:   `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			status: "reviewing",
			want:   `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`,
		},
		{
			status: "rejected",
			want:   `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`,
		},
	}
	require.Len(t, tests, len(domain.HomeworkStatuses))

	got := make(map[string]struct{}, len(tests))
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			message, err := ParseStatus(map[string]any{
				"homework_name":    "hw1",
				"status":           tt.status,
				"reviewer_comment": "ok",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, message)
			got[message] = struct{}{}
		})
	}
	assert.Len(t, got, len(tests))
}

func TestParseStatus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		record  any
		wantErr error
	}{
		{
			name:    "not an object",
			record:  []any{"hw1", "approved"},
			wantErr: ierrors.ErrTypeMismatch,
		},
		{
			name:    "missing name",
			record:  map[string]any{"status": "approved"},
			wantErr: ierrors.ErrMissingField,
		},
		{
			name:    "missing status",
			record:  map[string]any{"homework_name": "hw1"},
			wantErr: ierrors.ErrMissingField,
		},
		{
			name:    "name is not a string",
			record:  map[string]any{"homework_name": 1, "status": "approved"},
			wantErr: ierrors.ErrTypeMismatch,
		},
		{
			name:    "unknown status",
			record:  map[string]any{"homework_name": "hw1", "status": "lost"},
			wantErr: ierrors.ErrUnknownStatus,
		},
		{
			name:    "empty status",
			record:  map[string]any{"homework_name": "hw1", "status": ""},
			wantErr: ierrors.ErrUnknownStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, err := ParseStatus(tt.record)
			assert.Empty(t, message)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, ierrors.IsExpected(err))
		})
	}
}

func TestParseStatus_MissingFieldNamesKey(t *testing.T) {
	_, err := ParseStatus(map[string]any{"status": "approved"})
	assert.Contains(t, err.Error(), "homework_name")

	_, err = ParseStatus(map[string]any{"homework_name": "hw1"})
	assert.Contains(t, err.Error(), "status")
}
