// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feedback

import (
	"go.uber.org/zap"

	"github.com/pdiddy/biogenerator/pkg/types"
)

// Popup is a message shown to one player.
type Popup struct {
	Key       string         `json:"key" yaml:"key"`
	Text      string         `json:"text" yaml:"text"`
	Recipient types.EntityID `json:"recipient" yaml:"recipient"`
}

// Sound is a sound played at an entity.
type Sound struct {
	Sound types.SoundRef `json:"sound" yaml:"sound"`
	At    types.EntityID `json:"at" yaml:"at"`
}

// Sink collects feedback in the order it was emitted.
type Sink struct {
	printer *Printer
	logger  *zap.SugaredLogger

	Popups []Popup
	Sounds []Sound
}

// NewSink returns a Sink rendering messages in lang. A nil logger
// disables logging.
func NewSink(lang string, logger *zap.SugaredLogger) *Sink {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Sink{printer: NewPrinter(lang), logger: logger}
}

// ShowMessage renders key and records it as a popup for recipient.
func (s *Sink) ShowMessage(key string, recipient types.EntityID, args map[string]any) {
	text := s.printer.Render(key, args)
	s.Popups = append(s.Popups, Popup{Key: key, Text: text, Recipient: recipient})
	s.logger.Debugw("popup", "key", key, "recipient", recipient, "text", text)
}

// PlaySound records a sound played at an entity.
func (s *Sink) PlaySound(sound types.SoundRef, at types.EntityID) {
	s.Sounds = append(s.Sounds, Sound{Sound: sound, At: at})
	s.logger.Debugw("sound", "sound", sound, "at", at)
}

// Text renders key without recording it.
func (s *Sink) Text(key string, args map[string]any) string {
	return s.printer.Render(key, args)
}
