package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_ParsedDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "plain", in: "2024-05-01T10:20:30", want: time.Date(2024, 5, 1, 10, 20, 30, 0, time.Local)},
		{name: "fractional seconds", in: "2024-05-01T10:20:30.123456", want: time.Date(2024, 5, 1, 10, 20, 30, 0, time.Local)},
		{name: "empty", in: "", want: time.Time{}},
		{name: "garbage", in: "yesterday", want: time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(Post{Date: tt.in}.ParsedDate()))
		})
	}
}

func TestPost_JSONUsesBackendNames(t *testing.T) {
	p := Post{Title: "Olá", Text: "primeira postagem", Theme: Theme{ID: 3}.Ref(), Author: User{ID: 7, Name: "Ana"}.Ref()}

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "Olá", raw["titulo"])
	assert.Equal(t, "primeira postagem", raw["texto"])
	assert.NotContains(t, raw, "data")
	assert.Equal(t, map[string]any{"id": float64(3), "descricao": ""}, raw["tema"])
	assert.Equal(t, float64(7), raw["usuario"].(map[string]any)["id"])
}

func TestUser_PasswordOmittedWhenEmpty(t *testing.T) {
	b, err := json.Marshal(User{ID: 1, Name: "Ana", Username: "ana@mail.com"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "senha")
}
