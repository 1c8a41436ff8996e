package ui

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/efrogs/rarity/internal/rarity"
	"github.com/efrogs/rarity/internal/slugs"
)

// InfoOptions carries the collection details shown in the info overlay.
type InfoOptions struct {
	Collection     string
	MarketplaceURL string
}

// InfoMarkdown builds the informational overlay: tier ranges, how scores are
// computed, the trait bar legend and a note about the collection.
func InfoMarkdown(opts InfoOptions) string {
	var b strings.Builder

	b.WriteString("# Rarity Information\n\n")

	b.WriteString("## Rarity Tiers\n\n")
	for _, r := range rarity.Tiers() {
		fmt.Fprintf(&b, "- **%s**: %s\n", r.Name, tierDescription(r, opts.Collection))
	}

	b.WriteString("\n## How Rarity Is Calculated\n\n")
	fmt.Fprintf(&b, "Rarity is calculated using a statistical model that considers the rarity of each trait an item of %s possesses.\n\n", opts.Collection)
	b.WriteString("**Rarity Score** for a trait = 1 / (trait occurrence percentage)\n\n")
	b.WriteString("The rarer a trait is within the collection, the higher its rarity score. ")
	b.WriteString("The total rarity score is the sum of all individual trait scores.\n")

	b.WriteString("\n## Trait Score Visualization\n\n")
	fmt.Fprintf(&b, "The bar under each trait represents its rarity score, reaching full length at %.0f points. ", rarity.MaxBarScore)
	b.WriteString("Darker bars indicate rarer traits:\n\n")
	for _, i := range rarity.Intensities() {
		fmt.Fprintf(&b, "- `%s` %s\n", i, i.Label())
	}

	b.WriteString("\n## Collection Information\n\n")
	fmt.Fprintf(&b, "%s is a limited NFT collection. Each item has a unique combination of traits that determines its overall rarity within the ecosystem.\n", opts.Collection)
	if opts.MarketplaceURL != "" {
		fmt.Fprintf(&b, "\n[View collection on Element Market](%s)\n", opts.MarketplaceURL)
	}

	return b.String()
}

func tierDescription(r rarity.TierRange, collection string) string {
	if r.MaxRank == 0 {
		return fmt.Sprintf("All other %s (Ranks %d+)", collection, r.MinRank)
	}
	return fmt.Sprintf("Top %d %s (Ranks %d-%d)", r.MaxRank, collection, r.MinRank, r.MaxRank)
}

// Heading is a markdown heading with the byte offset of its line.
type Heading struct {
	Level  int
	Text   string
	Offset int
}

// ExtractHeadings lists the headings of a markdown document in order.
func ExtractHeadings(content string) []Heading {
	src := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var textBuilder strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				textBuilder.Write(textNode.Segment.Value(src))
			}
		}

		offset := 0
		if heading.Lines().Len() > 0 {
			offset = lineStart(src, heading.Lines().At(0).Start)
		}
		headings = append(headings, Heading{
			Level:  heading.Level,
			Text:   strings.TrimSpace(textBuilder.String()),
			Offset: offset,
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// Section returns the part of content under the first non-title heading whose
// text contains name (case-insensitive) or whose slug equals name, up to the
// next heading of the same or a higher level.
func Section(content, name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}

	headings := ExtractHeadings(content)
	for i, h := range headings {
		if h.Level == 1 {
			continue
		}
		if !strings.Contains(strings.ToLower(h.Text), needle) && slugs.HeadingSlug(h.Text) != needle {
			continue
		}
		end := len(content)
		for _, next := range headings[i+1:] {
			if next.Level <= h.Level {
				end = next.Offset
				break
			}
		}
		return strings.TrimRight(content[h.Offset:end], "\n") + "\n", true
	}
	return "", false
}

// SectionNames lists heading texts below the document title.
func SectionNames(content string) []string {
	var names []string
	for _, h := range ExtractHeadings(content) {
		if h.Level > 1 {
			names = append(names, h.Text)
		}
	}
	return names
}

func lineStart(src []byte, offset int) int {
	for offset > 0 && src[offset-1] != '\n' {
		offset--
	}
	return offset
}
