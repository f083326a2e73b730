// Package feed renders validated records into an RSS 2.0 document and derives
// the public URLs the document links to.
package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tylerneylon/rss/app/cfg"
	"github.com/tylerneylon/rss/app/record"
)

// Entry is one fully resolved feed item, ready for rendering.
type Entry struct {
	Title       string
	Link        string
	Description string
	Author      string // empty means the author element is omitted
	Published   time.Time
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run serializes the channel metadata and entries into an RSS 2.0 document.
// Entries are emitted newest-first by publication date; equal dates keep
// their discovery order, so output is deterministic for unchanged input.
// Run performs no I/O; the caller decides where the document goes.
func (g *Generator) Run(root *record.Root, entries []Entry) string {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Published.After(sorted[j].Published)
	})

	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", root.Title, 4)
	g.writeElement(&buf, "link", root.Link, 4)
	g.writeElement(&buf, "description", root.Description, 4)

	lastBuildDate := time.Now()
	if len(sorted) > 0 {
		lastBuildDate = sorted[0].Published
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("rss/%s", cfg.GetVersion()), 4)

	for _, entry := range sorted {
		g.writeItem(&buf, entry)
	}

	buf.WriteString("  </channel>\n</rss>\n")

	return buf.String()
}

func (g *Generator) writeItem(buf *bytes.Buffer, entry Entry) {
	buf.WriteString("    <item>\n")

	g.writeElement(buf, "title", entry.Title, 6)
	g.writeElement(buf, "link", entry.Link, 6)

	buf.WriteString(`      <guid isPermaLink="true">`)
	xml.EscapeText(buf, []byte(entry.Link))
	buf.WriteString("</guid>\n")

	// CDATA descriptions (written by the addimg command) carry markup and
	// must reach the reader unescaped.
	if strings.HasPrefix(entry.Description, "<![CDATA[") {
		buf.WriteString("      <description>")
		buf.WriteString(entry.Description)
		buf.WriteString("</description>\n")
	} else {
		g.writeElement(buf, "description", entry.Description, 6)
	}

	g.writeElement(buf, "pubDate", entry.Published.Format(time.RFC1123Z), 6)

	if entry.Author != "" {
		g.writeElement(buf, "author", entry.Author, 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
