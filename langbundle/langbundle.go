// Package langbundle turns a decoded LANG chunk into i18n.Bundle message
// catalogs, one bundle per language. It is a read-only adapter: nothing
// here feeds back into decode or encode, so building a bundle can never
// perturb round-trip byte-equality of the container itself.
package langbundle

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/ryi3r/Clovy"
)

// Build returns one *i18n.Bundle per language in info, with one message
// per entry_id/string pair. Entries with an empty string are skipped —
// LANG's pointer strings use the "safe" null-pointer convention, so an
// absent translation decodes to an empty byte slice rather than an error.
func Build(info *clovy.LanguageInfo) ([]*i18n.Bundle, error) {
	bundles := make([]*i18n.Bundle, 0, len(info.Languages))
	for _, lang := range info.Languages {
		tag, err := language.Parse(string(lang.Region))
		if err != nil {
			tag = language.Und
		}
		bundle := i18n.NewBundle(tag)
		for i, entry := range lang.Entries {
			if len(entry) == 0 {
				continue
			}
			if i >= len(info.EntryIDs) {
				break
			}
			if err := bundle.AddMessages(tag, &i18n.Message{
				ID:    string(info.EntryIDs[i]),
				Other: string(entry),
			}); err != nil {
				return nil, fmt.Errorf("langbundle: adding message for language %q: %w", lang.Name, err)
			}
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}
