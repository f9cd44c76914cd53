package config

import "sort"

// Presets are named inputs that show off particular behaviour.
var Presets = map[string]string{
	"default":    "64, 34, 25, 12, 22, 11, 90",
	"reversed":   "9, 8, 7, 6, 5, 4, 3, 2, 1",
	"sorted":     "1, 2, 3, 4, 5, 6, 7, 8, 9",
	"duplicates": "4, 1, 4, 2, 4, 1, 3",
	"negatives":  "-7, 3, 0, -2, 11, -13, 5",
	"primes":     "2, 3, 4, 5, 9, 11, 15, 17, 21, 23, 1, 0",
	"tiny":       "2, 1",
}

func GetPreset(name string) (string, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns preset names in lexical order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
