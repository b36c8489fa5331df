package storage

import (
	"strconv"
	"strings"
)

// SaveVersion is the format written by this build. It only ever
// increases; every older version listed in the history below stays
// loadable, with absent fields filled from their typed defaults.
const SaveVersion = "1.1"

// Save format history:
//
//	1.0    — level number, character, level, fog_of_war, statistics
//	1.0.5  — rendering_mode, player_asleep, game_over, victory,
//	         message, death_reason, pending_selection
//	1.1    — difficulty_manager, camera
//
// fieldIntroduced is the explicit table behind that history. Defaults
// are applied field-by-field: a field can be legitimately absent from a
// current-version document too (camera in 2D mode), so key presence
// alone is not enough to tell "old save" from "no value".
var fieldIntroduced = map[string]string{
	"current_level_number": "1.0",
	"character":            "1.0",
	"level":                "1.0",
	"fog_of_war":           "1.0",
	"statistics":           "1.0",

	"rendering_mode":    "1.0.5",
	"player_asleep":     "1.0.5",
	"game_over":         "1.0.5",
	"victory":           "1.0.5",
	"message":           "1.0.5",
	"death_reason":      "1.0.5",
	"pending_selection": "1.0.5",

	"difficulty_manager": "1.1",
	"camera":             "1.1",
}

// fieldInVersion reports whether a document of the given version is
// expected to carry the field. Unknown fields are treated as always
// expected so a missing one is at worst logged, never an error.
func fieldInVersion(field, docVersion string) bool {
	introduced, ok := fieldIntroduced[field]
	if !ok {
		return true
	}
	return compareVersions(docVersion, introduced) >= 0
}

// compareVersions compares dotted numeric versions ("1.0.5" < "1.1").
// Missing segments count as zero; non-numeric segments as zero too, so
// a malformed version compares as oldest rather than failing.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
