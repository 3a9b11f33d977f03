package scheduler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bayasdev/power-grid-balance/internal/domain"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "fetch error",
			err:  &domain.FetchError{Attempts: 3, Err: errors.New("timeout")},
			want: "remote_fetch",
		},
		{
			name: "wrapped fetch error",
			err:  fmt.Errorf("ingesting day: %w", &domain.FetchError{Attempts: 3, Err: errors.New("timeout")}),
			want: "remote_fetch",
		},
		{
			name: "invalid payload error",
			err:  &domain.InvalidPayloadError{Reason: "missing top-level title"},
			want: "invalid_payload",
		},
		{
			name: "storage error",
			err:  &domain.StorageError{Op: "upsert balance", Err: errors.New("connection reset")},
			want: "storage",
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}
