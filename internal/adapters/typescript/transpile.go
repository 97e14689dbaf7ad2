package typescript

// Transpile strips erasable type syntax from source while preserving line
// structure, so every output line aligns with its input line. It removes
// variable and parameter annotations, return types, optional-parameter
// markers, interface and type-alias declarations, and type-only imports.
func Transpile(source string) string {
	blanked := blankTypeOnlyRegions([]byte(source))
	return stripAnnotations(blanked)
}

// blankTypeOnlyRegions replaces declaration-only statements with spaces.
// Newlines inside a blanked region survive so line numbering holds.
func blankTypeOnlyRegions(src []byte) []byte {
	out := append([]byte(nil), src...)
	atStart := true
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			i = skipString(src, i)
			atStart = false
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipLineComment(src, i)
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipBlockComment(src, i)
		case isIdentStart(c):
			word, end := readWord(src, i)
			if !atStart {
				i = end
				break
			}
			switch word {
			case "interface":
				stop := findBlockEnd(src, end)
				blank(out, i, stop)
				i = stop
			case "type":
				if isAliasDecl(src, end) {
					stop := findStatementEnd(src, end)
					blank(out, i, stop)
					i = stop
				} else {
					i = end
					atStart = false
				}
			case "import":
				if next, _ := peekWord(src, end); next == "type" {
					stop := findStatementEnd(src, end)
					blank(out, i, stop)
					i = stop
				} else {
					i = end
					atStart = false
				}
			case "export":
				next, nend := peekWord(src, end)
				switch {
				case next == "interface":
					stop := findBlockEnd(src, nend)
					blank(out, i, stop)
					i = stop
				case next == "type" && isAliasDecl(src, nend):
					stop := findStatementEnd(src, nend)
					blank(out, i, stop)
					i = stop
				default:
					i = end
				}
			default:
				i = end
				atStart = false
			}
		default:
			switch {
			case c == ';' || c == '\n' || c == '{' || c == '}':
				atStart = true
			case c != ' ' && c != '\t' && c != '\r':
				atStart = false
			}
			i++
		}
	}
	return out
}

// stripAnnotations removes colon annotations from the already-blanked
// source. An open-bracket stack decides whether a colon introduces a type:
// inside parentheses it is a parameter annotation, after a closing paren a
// return type, and inside an active let/const/var statement a variable type.
// Everything else, object literals and ternaries included, passes through.
func stripAnnotations(src []byte) string {
	out := make([]byte, 0, len(src))
	var stack []byte
	varDepth := -1
	var prevSig byte
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			j := skipString(src, i)
			out = append(out, src[i:j]...)
			prevSig = c
			i = j
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			j := skipLineComment(src, i)
			out = append(out, src[i:j]...)
			i = j
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			j := skipBlockComment(src, i)
			out = append(out, src[i:j]...)
			i = j
		case isIdentStart(c):
			word, end := readWord(src, i)
			if word == "let" || word == "const" || word == "var" {
				varDepth = len(stack)
			}
			out = append(out, src[i:end]...)
			prevSig = src[end-1]
			i = end
		case c == '(' || c == '{' || c == '[':
			stack = append(stack, c)
			out = append(out, c)
			prevSig = c
			i++
		case c == ')' || c == '}' || c == ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			out = append(out, c)
			prevSig = c
			i++
		case c == '?' && inParams(stack) && nextSig(src, i+1) == ':':
			// Optional-parameter marker; the colon branch removes the type.
			i++
		case c == ':':
			returnType := prevSig == ')'
			if returnType || inParams(stack) || varDepth == len(stack) && annotatable(prevSig) {
				i = skipTypeExpr(src, i+1, returnType)
			} else {
				out = append(out, c)
				prevSig = c
				i++
			}
		case c == '=':
			if varDepth == len(stack) {
				varDepth = -1
			}
			out = append(out, c)
			prevSig = c
			i++
		case c == ';' || c == '\n':
			varDepth = -1
			out = append(out, c)
			if c == ';' {
				prevSig = c
			}
			i++
		default:
			out = append(out, c)
			if c != ' ' && c != '\t' && c != '\r' {
				prevSig = c
			}
			i++
		}
	}
	return string(out)
}

// skipTypeExpr consumes a type expression starting at i and returns the
// index of the delimiter that ends it. Return-type annotations additionally
// stop at the arrow of an arrow function. The expect flag tracks whether a
// type token is still pending, which is how a '{' opening an object type is
// told apart from one opening a function body.
func skipTypeExpr(src []byte, i int, stopAtArrow bool) int {
	depth := 0
	expect := true
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			i = skipString(src, i)
			expect = false
			continue
		case isIdentPart(c):
			_, i = readWord(src, i)
			expect = false
			continue
		case c == '<' || c == '(' || c == '[':
			depth++
			expect = true
		case c == '{':
			if depth == 0 && !expect {
				return i
			}
			depth++
			expect = true
		case c == '>' || c == ')' || c == ']' || c == '}':
			if depth == 0 {
				return i
			}
			depth--
			expect = false
		case c == '=' && i+1 < len(src) && src[i+1] == '>':
			if stopAtArrow && depth == 0 {
				return i
			}
			i += 2
			expect = true
			continue
		case c == '|' || c == '&':
			expect = true
		case depth == 0 && (c == ';' || c == '=' || c == '\n'):
			return i
		case c == ',':
			if depth == 0 {
				return i
			}
			expect = true
		}
		i++
	}
	return i
}

func inParams(stack []byte) bool {
	return len(stack) > 0 && stack[len(stack)-1] == '('
}

func annotatable(prev byte) bool {
	return isIdentPart(prev) || prev == ']'
}

func nextSig(src []byte, i int) byte {
	for ; i < len(src); i++ {
		if src[i] != ' ' && src[i] != '\t' {
			return src[i]
		}
	}
	return 0
}

// isAliasDecl reports whether the token after a "type" keyword shapes a
// type-alias declaration, meaning an identifier followed by '='.
func isAliasDecl(src []byte, i int) bool {
	word, end := peekWord(src, i)
	if word == "" {
		return false
	}
	return nextSig(src, end) == '='
}

func peekWord(src []byte, i int) (string, int) {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	if i >= len(src) || !isIdentStart(src[i]) {
		return "", i
	}
	return readWord(src, i)
}

func readWord(src []byte, i int) (string, int) {
	start := i
	for i < len(src) && isIdentPart(src[i]) {
		i++
	}
	return string(src[start:i]), i
}

// findBlockEnd returns the index just past the '}' matching the first '{'
// found at or after i.
func findBlockEnd(src []byte, i int) int {
	depth := 0
	opened := false
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			i = skipString(src, i)
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipLineComment(src, i)
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipBlockComment(src, i)
			continue
		case c == '{':
			depth++
			opened = true
		case c == '}':
			depth--
			if opened && depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return i
}

// findStatementEnd returns the index just past the terminating ';', or the
// index of the line's newline when no semicolon appears before it.
func findStatementEnd(src []byte, i int) int {
	depth := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			i = skipString(src, i)
			continue
		case c == '{' || c == '(' || c == '[':
			depth++
		case c == '}' || c == ')' || c == ']':
			depth--
		case c == ';' && depth == 0:
			return i + 1
		case c == '\n' && depth == 0:
			return i
		}
		i++
	}
	return i
}

func blank(out []byte, from, to int) {
	for j := from; j < to && j < len(out); j++ {
		if out[j] != '\n' && out[j] != '\r' {
			out[j] = ' '
		}
	}
}

func skipString(src []byte, i int) int {
	quote := src[i]
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			if quote != '`' {
				return i
			}
		}
		i++
	}
	return i
}

func skipLineComment(src []byte, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(src []byte, i int) int {
	i += 2
	for i+1 < len(src) {
		if src[i] == '*' && src[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(src)
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
