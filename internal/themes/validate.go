// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"

	"github.com/gorilla/css/scanner"
)

// Validate tokenizes generated CSS and checks that braces and parentheses
// balance. It guards writes of generated output; it is not a general linter.
func Validate(css string) error {
	s := scanner.New(css)
	braces, parens := 0, 0

	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if braces != 0 {
				return fmt.Errorf("unbalanced braces: %d left open", braces)
			}
			if parens != 0 {
				return fmt.Errorf("unbalanced parentheses: %d left open", parens)
			}
			return nil
		case scanner.TokenError:
			return fmt.Errorf("line %d, column %d: %s", tok.Line, tok.Column, tok.Value)
		case scanner.TokenFunction:
			parens++
		case scanner.TokenChar:
			switch tok.Value {
			case "{":
				braces++
			case "}":
				braces--
			case "(":
				parens++
			case ")":
				parens--
			}
			if braces < 0 {
				return fmt.Errorf("line %d, column %d: unexpected }", tok.Line, tok.Column)
			}
			if parens < 0 {
				return fmt.Errorf("line %d, column %d: unexpected )", tok.Line, tok.Column)
			}
		}
	}
}
