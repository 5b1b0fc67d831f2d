package inference

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockParaphraserParaphrase(t *testing.T) {
	m := &MockParaphraser{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"capitalizes and ends sentence", "hello world", "Hello world."},
		{"keeps existing period", "Hello world.", "Hello world."},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := m.Paraphrase(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, Success{Paraphrased: tt.want}, res)
		})
	}
}

func TestMockParaphraserContextCancel(t *testing.T) {
	m := &MockParaphraser{Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := m.Paraphrase(ctx, "hello")
	require.NoError(t, err)
	assert.IsType(t, Failure{}, res)
}

func TestMockParaphraserName(t *testing.T) {
	assert.Equal(t, "Mock", (&MockParaphraser{}).Name())
}
