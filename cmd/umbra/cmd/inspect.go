package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-umbra/umbra/pkg/dom"
	"github.com/go-umbra/umbra/pkg/style"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Inspect component usage in an HTML document",
		Long: `Parse an HTML document and report the component tags it uses.

A component tag is any dashed tag name (e.g. x-badge). The report lists
each tag with its element count, plus any injected style sheets left in
the document.

Examples:
  umbra inspect index.html`,
		Usage: "umbra inspect <file>",
		Run:   runInspect,
	})
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func runInspect(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("file is required\n\nUsage: umbra inspect <file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	tags := make(map[string]int)
	sheets := 0
	doc.Walk(func(el *dom.Element) {
		if isComponentTag(el.Tag()) {
			tags[el.Tag()]++
		}
		if el.Tag() == "style" && el.HasAttr(style.StyleAttr) {
			sheets++
		}
	})

	fmt.Println(headingStyle.Render("Component tags"))
	if len(tags) == 0 {
		fmt.Println("  (none)")
	} else {
		names := make([]string, 0, len(tags))
		for name := range tags {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s %s\n",
				tagStyle.Render("<"+name+">"),
				countStyle.Render(fmt.Sprintf("x%d", tags[name])))
		}
	}

	if sheets > 0 {
		fmt.Println()
		fmt.Println(warnStyle.Render(fmt.Sprintf(
			"%d injected style sheet(s) present; the document was serialized from a live tree", sheets)))
	}

	return nil
}

// isComponentTag reports whether tag names a component: lowercase, starting
// with a letter and containing a dash.
func isComponentTag(tag string) bool {
	if tag == "" || tag[0] < 'a' || tag[0] > 'z' {
		return false
	}
	for _, r := range tag {
		if r == '-' {
			return true
		}
	}
	return false
}
