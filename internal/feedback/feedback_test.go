// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/biogenerator/pkg/types"
)

func TestPrinter_Render(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		args map[string]any
		want string
	}{
		{
			name: "english wrong reagent",
			lang: "en",
			key:  "material-extractor-comp-wrongreagent",
			args: map[string]any{"used": types.EntityID("nettle")},
			want: "nettle has no usable reagents.",
		},
		{
			name: "german dump verb",
			lang: "de-DE",
			key:  "dump-biogenerator-verb-name",
			args: map[string]any{"unit": "biogen"},
			want: "Erzeugnisse in biogen legen",
		},
		{
			name: "unsupported language falls back to english",
			lang: "ja",
			key:  "dump-biogenerator-verb-name",
			args: map[string]any{"unit": "biogen"},
			want: "Place produce into biogen",
		},
		{
			name: "empty language is english",
			key:  "dump-biogenerator-verb-name",
			args: map[string]any{"unit": "biogen"},
			want: "Place produce into biogen",
		},
		{
			name: "unknown key renders as key",
			lang: "en",
			key:  "no-such-message",
			want: "no-such-message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPrinter(tt.lang).Render(tt.key, tt.args))
		})
	}
}

func TestSink(t *testing.T) {
	s := NewSink("en", nil)

	s.ShowMessage("material-extractor-comp-wrongreagent", "player", map[string]any{"used": "rock"})
	s.PlaySound("/Audio/Effects/waterswirl.ogg", "biogen")

	require.Len(t, s.Popups, 1)
	assert.Equal(t, Popup{
		Key:       "material-extractor-comp-wrongreagent",
		Text:      "rock has no usable reagents.",
		Recipient: "player",
	}, s.Popups[0])
	assert.Equal(t, []Sound{{Sound: "/Audio/Effects/waterswirl.ogg", At: "biogen"}}, s.Sounds)
	assert.Equal(t, "Place produce into biogen", s.Text("dump-biogenerator-verb-name", map[string]any{"unit": "biogen"}))
}
