package commander

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/commander/pkg/textutil"
)

const defaultWidth = 80

// DefaultUsage lists every registered command with its aliases and short help, wrapped at 80
// columns.
func DefaultUsage[C any](c *Commander[C]) string {
	return UsageWidth(c, defaultWidth)
}

// UsageWidth is like [DefaultUsage] but wraps at width columns.
func UsageWidth[C any](c *Commander[C], width int) string {
	if c == nil {
		return ""
	}
	descriptors := c.descriptors()
	if len(descriptors) == 0 {
		return "No commands registered."
	}
	slices.SortFunc(descriptors, func(a, b *Descriptor[C]) int {
		return cmp.Compare(a.Config.Identifier, b.Config.Identifier)
	})

	names := make([]string, len(descriptors))
	maxNameLen := 0
	for i, d := range descriptors {
		names[i] = displayName(d.Config)
		maxNameLen = max(maxNameLen, len(names[i]))
	}
	nameWidth := maxNameLen + 4
	wrapWidth := max(width-nameWidth, 20)

	var b strings.Builder
	b.WriteString("Available Commands:\n")
	for i, d := range descriptors {
		lines := textutil.Wrap(d.Config.ShortHelp, wrapWidth)
		if len(lines) == 0 {
			fmt.Fprintf(&b, "  %s\n", names[i])
			continue
		}
		padding := strings.Repeat(" ", maxNameLen-len(names[i])+4)
		fmt.Fprintf(&b, "  %s%s%s\n", names[i], padding, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "%s%s\n", textutil.Indent(nameWidth+2), line)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// CommandUsage renders help for a single command: its short help, usage pattern and aliases.
func CommandUsage(cfg CommandConfig, width int) string {
	var b strings.Builder
	if cfg.ShortHelp != "" {
		for _, line := range textutil.Wrap(cfg.ShortHelp, width) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Usage:\n  ")
	if cfg.Usage != "" {
		b.WriteString(cfg.Usage)
	} else {
		b.WriteString(cfg.Identifier)
	}
	b.WriteRune('\n')

	if len(cfg.Aliases) > 0 {
		b.WriteString("\nAliases:\n  ")
		b.WriteString(strings.Join(cfg.Aliases, ", "))
		b.WriteRune('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func displayName(cfg CommandConfig) string {
	if len(cfg.Aliases) == 0 {
		return cfg.Identifier
	}
	return cfg.Identifier + " (" + strings.Join(cfg.Aliases, ", ") + ")"
}
