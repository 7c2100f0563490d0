package cmd

import (
	"fmt"
	"strings"

	"taskjournal/internal/domain"
)

// modifications is a parsed command line of words, KEY=VALUE pairs and
// +tag/-tag markers
type modifications struct {
	Words      []string
	Set        map[string]string
	Remove     []string
	AddTags    []string
	RemoveTags []string
}

// Description joins the free words, or returns an empty string
func (m modifications) Description() string {
	return strings.Join(m.Words, " ")
}

// parseModifications splits args into modifications. An empty value
// (KEY=) removes the property. Values of date-typed properties are
// stored as epoch seconds.
func parseModifications(args []string, d *domain.Display) (modifications, error) {
	mods := modifications{Set: make(map[string]string)}

	for _, arg := range args {
		switch {
		case len(arg) > 1 && arg[0] == '+':
			mods.AddTags = append(mods.AddTags, arg[1:])

		case len(arg) > 1 && arg[0] == '-':
			mods.RemoveTags = append(mods.RemoveTags, arg[1:])

		case strings.Contains(arg, "=") && !strings.HasPrefix(arg, "="):
			prop, value, _ := strings.Cut(arg, "=")
			if value == "" {
				mods.Remove = append(mods.Remove, prop)
				continue
			}
			if d != nil && d.IsDate(prop) {
				epoch, err := d.ParseDate(value)
				if err != nil {
					return modifications{}, fmt.Errorf("%s: %w", prop, err)
				}
				value = fmt.Sprint(epoch)
			}
			mods.Set[prop] = value

		default:
			mods.Words = append(mods.Words, arg)
		}
	}
	return mods, nil
}
