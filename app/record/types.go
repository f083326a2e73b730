package record

// Sidecar file names. A root sidecar describes the site as a whole; an item
// sidecar holds the ordered posts of one directory.
const (
	RootFilename  = "rss_root.json"
	ItemsFilename = "rss_items.json"
)

// Template placeholder values. Generated sidecars start with these and a
// compile refuses to run until they have been replaced.
const (
	PlaceholderTitle       = "TITLE"
	PlaceholderLink        = "URL"
	PlaceholderDescription = "DESCRIPTION"
	PlaceholderAuthor      = "AUTHOR"
)

// Root is the site-wide record stored in rss_root.json.
type Root struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Description   string `json:"description"`
	RootDir       string `json:"rootDir"`
	RSSFilename   string `json:"rssFilename"`
	DefaultAuthor string `json:"defaultAuthor,omitempty"`
}

// Item is one post entry stored in a directory's rss_items.json. File order
// within a sidecar is meaningful and preserved.
type Item struct {
	Filename    string `json:"filename"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author,omitempty"`
	PubDate     string `json:"pubDate"`
}

var placeholders = map[string]string{
	"title":       PlaceholderTitle,
	"link":        PlaceholderLink,
	"description": PlaceholderDescription,
	"author":      PlaceholderAuthor,
}

// IsPlaceholder reports whether value is still the template default for field.
func IsPlaceholder(field, value string) bool {
	p, ok := placeholders[field]
	return ok && value == p
}

// EffectiveAuthor returns the author to publish for an item: the item's own
// author if set, otherwise the root's default author. An author left at its
// template placeholder counts as unset. An empty result means the author
// element is omitted from the feed.
func (it Item) EffectiveAuthor(root *Root) string {
	if it.Author != "" && it.Author != PlaceholderAuthor {
		return it.Author
	}
	if root.DefaultAuthor != PlaceholderAuthor {
		return root.DefaultAuthor
	}
	return ""
}
