package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureValidator_ParseFixture(t *testing.T) {
	v, err := NewFixtureValidator()
	require.NoError(t, err)

	fixture, err := v.ParseFixture([]byte(validFixture))
	require.NoError(t, err)
	assert.Equal(t, "World Cup 2026", fixture.Competition.Name)
	assert.True(t, fixture.Competition.AllowDraws)
	require.Len(t, fixture.Teams, 2)
	require.Len(t, fixture.Games, 1)
	require.NotNil(t, fixture.Games[0].Stage)
	assert.Equal(t, "group a", *fixture.Games[0].Stage)
	assert.Len(t, fixture.Props, 1)
}

func TestFixtureValidator_References(t *testing.T) {
	v, err := NewFixtureValidator()
	require.NoError(t, err)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{
			name:     "unknown team",
			data:     `{"competition": {"name": "x", "lock_date": "2026-06-11T16:00:00Z"}, "teams": [{"key":"A","name":"a"},{"key":"B","name":"b"}], "games": [{"team_a":"A","team_b":"C","start_time":"2026-06-11T19:00:00Z"}]}`,
			errorMsg: `unknown team key "C"`,
		},
		{
			name:     "self match",
			data:     `{"competition": {"name": "x", "lock_date": "2026-06-11T16:00:00Z"}, "teams": [{"key":"A","name":"a"},{"key":"B","name":"b"}], "games": [{"team_a":"A","team_b":"A","start_time":"2026-06-11T19:00:00Z"}]}`,
			errorMsg: "cannot play itself",
		},
		{
			name:     "duplicate key",
			data:     `{"competition": {"name": "x", "lock_date": "2026-06-11T16:00:00Z"}, "teams": [{"key":"A","name":"a"},{"key":"A","name":"b"}]}`,
			errorMsg: "duplicate team key",
		},
		{
			name:     "schema violation",
			data:     `{"competition": {"name": "", "lock_date": "2026-06-11T16:00:00Z"}, "teams": []}`,
			errorMsg: "schema validation failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ParseFixture([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}
