package record

import (
	"fmt"
	"strings"
)

// ImagePlaceholder is the img src value the addimg command writes; the user
// replaces it with the post's actual image URL.
const ImagePlaceholder = "IMG_SRC"

// AddImageTag wraps each item's description in a CDATA block carrying an
// empty img tag, so the description can hold HTML once compiled. Items whose
// description already mentions CDATA are left alone. Returns how many items
// were rewritten.
func AddImageTag(items []Item) int {
	changed := 0
	for i := range items {
		if strings.Contains(items[i].Description, "CDATA") {
			continue
		}
		items[i].Description = fmt.Sprintf(`<![CDATA[%s <img src="%s">]]>`,
			items[i].Description, ImagePlaceholder)
		changed++
	}
	return changed
}
