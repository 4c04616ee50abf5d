package catalogen

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/vk/batatacode/internal/textcase"
)

// digitRun matches a run of digits with a letter on both sides.
var digitRun = regexp.MustCompile(`([a-zA-Z])(\d+)([a-zA-Z])`)

// ConstName returns the Go identifier of id within typeName.
func ConstName(typeName, id string) string {
	return typeName + strcase.ToCamel(id)
}

// WireName returns the name loaders accept for id. Ids without digits are
// converted to snake case. Ids with digits are converted keeping each digit
// run in its word, then a run between letters is split off ("slot1item"
// becomes "slot_1item", "setSlot1Item" becomes "set_slot1_item").
func WireName(id string) string {
	if strings.ContainsAny(id, "0123456789") {
		return segmentDigits(textcase.Snake(id))
	}
	return strcase.ToSnake(id)
}

func segmentDigits(s string) string {
	return digitRun.ReplaceAllString(s, "${1}_${2}${3}")
}
