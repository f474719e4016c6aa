package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/textroute/internal/router"
)

func helpSpec() router.Spec {
	return router.Spec{
		Path:        "help",
		Aliases:     []string{"commands"},
		Category:    "Core",
		Description: "List commands, or show usage for one",
		Params: []router.Param{
			{Name: "command", Kind: router.Multiple},
		},
		Handler: func(ctx context.Context, inv *router.Invocation) error {
			e, err := env(inv)
			if err != nil {
				return err
			}
			if len(inv.Args) == 0 {
				return e.Reply(inv, renderOverview(e.Router()))
			}
			return e.Reply(inv, renderCommand(e.Router(), strings.Join(inv.Args, " ")))
		},
	}
}

// renderOverview lists every visible command grouped by category, in
// registration order.
func renderOverview(rt *router.Router) string {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, cat := range rt.Categories() {
		name := cat
		if name == "" {
			name = "Other"
		}
		sb.WriteString("\n**" + name + "**\n")
		walkVisible(rt.Category(cat), func(cmd *router.Command) {
			sb.WriteString(fmt.Sprintf("  `%s` — %s\n", cmd.Usage(), cmd.Description()))
		})
	}
	return sb.String()
}

// renderCommand shows the commands registered at a path plus its
// subgroups.
func renderCommand(rt *router.Router, path string) string {
	node := rt.GetItem(path)
	if node == nil {
		return fmt.Sprintf("No command named %q.", path)
	}

	var sb strings.Builder
	for _, cmd := range node.Commands() {
		sb.WriteString(fmt.Sprintf("`%s` — %s\n", cmd.Usage(), cmd.Description()))
		if len(cmd.Aliases()) > 0 {
			sb.WriteString("  aliases: " + strings.Join(cmd.Aliases(), ", ") + "\n")
		}
	}
	if subs := node.SubGroups(); len(subs) > 0 {
		names := make([]string, 0, len(subs))
		for _, sub := range subs {
			names = append(names, sub.Name())
		}
		sb.WriteString("subcommands: " + strings.Join(names, ", ") + "\n")
	}
	if sb.Len() == 0 {
		return fmt.Sprintf("No command named %q.", path)
	}
	return sb.String()
}

func walkVisible(m *router.Map, fn func(*router.Command)) {
	if m == nil {
		return
	}
	for _, cmd := range m.VisibleCommands() {
		fn(cmd)
	}
	for _, sub := range m.SubGroups() {
		walkVisible(sub, fn)
	}
}
