// Package rules compiles permission predicates from expression strings.
// Adapters put actor facts (admin flag, role ids) into Actor.Meta and rules
// read them by name:
//
//	actor.admin or actor.id == "42"
//	msg.guild != "" and "mods" in actor.roles
package rules

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/keshon/textroute/internal/router"
)

// Compile turns a boolean expression into a permission predicate. The
// expression sees "actor", "msg" and "args".
func Compile(src string) (router.PermissionFunc, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", src, err)
	}
	return func(inv *router.Invocation) (bool, string) {
		out, err := expr.Run(program, envFor(inv))
		if err != nil {
			return false, fmt.Sprintf("permission rule failed: %v", err)
		}
		if ok, _ := out.(bool); ok {
			return true, ""
		}
		return false, fmt.Sprintf("requires: %s", src)
	}, nil
}

// MustCompile is Compile for static registration blocks.
func MustCompile(src string) router.PermissionFunc {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

func envFor(inv *router.Invocation) map[string]interface{} {
	actor := map[string]interface{}{
		"id":    inv.Actor.ID,
		"name":  inv.Actor.Name,
		"admin": false,
		"roles": []string{},
	}
	for k, v := range inv.Actor.Meta {
		actor[k] = v
	}
	return map[string]interface{}{
		"actor": actor,
		"msg": map[string]interface{}{
			"channel": inv.Message.ChannelID,
			"guild":   inv.Message.GuildID,
		},
		"args": inv.Args,
	}
}
