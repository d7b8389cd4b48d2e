// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feedback renders localized player messages and records the
// popups and sounds produced while handling a trigger.
package feedback

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// entry is one localized message. Args names the arguments, in the order
// the format string consumes them.
type entry struct {
	Args         []string
	Translations map[language.Tag]string
}

var messages = map[string]entry{
	"material-extractor-comp-wrongreagent": {
		Args: []string{"used"},
		Translations: map[language.Tag]string{
			language.English: "%s has no usable reagents.",
			language.German:  "%s enthält keine verwertbaren Reagenzien.",
		},
	},
	"dump-biogenerator-verb-name": {
		Args: []string{"unit"},
		Translations: map[language.Tag]string{
			language.English: "Place produce into %s",
			language.German:  "Erzeugnisse in %s legen",
		},
	},
}

var (
	cat     = buildCatalog()
	matcher = language.NewMatcher([]language.Tag{language.English, language.German})
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, e := range messages {
		for tag, format := range e.Translations {
			if err := b.SetString(tag, key, format); err != nil {
				panic(fmt.Sprintf("registering message %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Printer renders message keys in one language.
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a Printer for the closest supported language to
// lang. Unknown or empty tags fall back to English.
func NewPrinter(lang string) *Printer {
	tag := language.English
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			_, idx, _ := matcher.Match(parsed)
			tag = []language.Tag{language.English, language.German}[idx]
		}
	}
	return &Printer{p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Render formats key with args. Keys without a catalog entry render as
// the key itself.
func (p *Printer) Render(key string, args map[string]any) string {
	e, ok := messages[key]
	if !ok {
		return key
	}
	vals := make([]any, len(e.Args))
	for i, name := range e.Args {
		vals[i] = fmt.Sprint(args[name])
	}
	return p.p.Sprintf(key, vals...)
}
