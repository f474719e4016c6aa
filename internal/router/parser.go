package router

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BadArgCountError reports a token count that cannot satisfy a command's
// signature. The dispatcher treats it as "try the next overload".
type BadArgCountError struct {
	Path string
	Got  int
	Want string
}

func (e *BadArgCountError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("%s takes no arguments, got %d", e.Path, e.Got)
	}
	return fmt.Sprintf("%s expects %q, got %d argument(s)", e.Path, e.Want, e.Got)
}

// ParseCommand walks the trie against text one whitespace-delimited token at
// a time, descending while a child matches, and returns the commands
// registered at the node it stopped on plus the offset where arguments
// begin (past the consumed path and its trailing whitespace). A longer
// matched path always wins; there is no backtracking to shorter prefixes.
// A nil slice means no command matched.
func ParseCommand(text string, root *Map) ([]*Command, int) {
	node := root
	offset := 0
	for {
		start := skipSpace(text, offset)
		tok, end := nextToken(text, start)
		if tok == "" {
			break
		}
		child := node.child(tok)
		if child == nil {
			break
		}
		node = child
		offset = skipSpace(text, end)
	}
	if node == root || len(node.entries) == 0 {
		return nil, 0
	}
	return node.Commands(), offset
}

// ParseArgs tokenizes text[offset:] against cmd's parameter signature and
// returns the argument list aligned with it. Arity mismatches come back as
// *BadArgCountError with no arguments populated.
func ParseArgs(text string, offset int, cmd *Command) ([]string, error) {
	args := make([]string, 0, len(cmd.params))
	i := offset
	for _, p := range cmd.params {
		switch p.Kind {
		case Required:
			start := skipSpace(text, i)
			tok, end := nextToken(text, start)
			if tok == "" {
				return nil, badArgCount(cmd, text, offset)
			}
			args = append(args, tok)
			i = end
		case Optional:
			start := skipSpace(text, i)
			tok, end := nextToken(text, start)
			if tok == "" {
				continue
			}
			args = append(args, tok)
			i = end
		case Multiple:
			for {
				start := skipSpace(text, i)
				tok, end := nextToken(text, start)
				if tok == "" {
					return args, nil
				}
				args = append(args, tok)
				i = end
			}
		case Unparsed:
			// Verbatim remainder: leading whitespace skipped, inner
			// whitespace preserved.
			args = append(args, text[skipSpace(text, i):])
			return args, nil
		}
	}
	if tok, _ := nextToken(text, skipSpace(text, i)); tok != "" {
		return nil, badArgCount(cmd, text, offset)
	}
	return args, nil
}

func badArgCount(cmd *Command, text string, offset int) error {
	return &BadArgCountError{
		Path: cmd.path,
		Got:  len(strings.Fields(text[offset:])),
		Want: FormatSignature(cmd.params),
	}
}

// skipSpace advances i past any whitespace.
func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// nextToken reads the token starting at i and returns it with the offset of
// the first byte after it. An empty token means end of input.
func nextToken(s string, i int) (string, int) {
	end := i
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if unicode.IsSpace(r) {
			break
		}
		end += size
	}
	return s[i:end], end
}
