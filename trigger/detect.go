package trigger

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/minxiang0101/markdown/document"
)

var headingRunRE = regexp.MustCompile(`^#{1,6}\s*$`)

// lineStartSequences is the single-character line-start evaluation order.
// The order is significant: the first matching rule wins.
var lineStartSequences = []string{"#", "-", "*", ">", "|"}

// Detect inspects text and the rune cursor offset and reports the active
// trigger context, if any.
//
// Evaluation order is fixed: the mid-line emoji check first, then the code
// fence, then the line-start characters, then the link characters. Detection
// stops at the first matching rule. Any input is valid, including an empty
// document and a cursor at either end of the buffer; out-of-range offsets
// are clamped.
func Detect(text string, cursor int) (Match, bool) {
	cursor = document.ClampOffset(text, cursor)
	if cursor == 0 {
		return Match{}, false
	}

	lineStart := document.LineStart(text, cursor)
	lineSoFar := []rune(document.LineSoFar(text, cursor))

	if m, ok := detectEmoji(lineSoFar, lineStart); ok {
		return m, true
	}
	if m, ok := detectFence(lineSoFar, lineStart); ok {
		return m, true
	}
	if m, ok := detectLineStart(lineSoFar, lineStart); ok {
		return m, true
	}
	return detectLink(lineSoFar, cursor)
}

// detectEmoji matches the last `:` on the line followed by at least one
// non-whitespace character. It runs before the line-start checks because a
// shortcode can occur mid-line.
func detectEmoji(lineSoFar []rune, lineStart int) (Match, bool) {
	colon := -1
	for i := len(lineSoFar) - 1; i >= 0; i-- {
		if lineSoFar[i] == ':' {
			colon = i
			break
		}
	}
	if colon < 0 {
		return Match{}, false
	}

	def := definitionFor(":")
	query := lineSoFar[colon+1:]
	if len(query) < def.MinQueryLen {
		return Match{}, false
	}
	for _, r := range query {
		if unicode.IsSpace(r) {
			return Match{}, false
		}
	}
	return Match{
		Definition:       def,
		Query:            string(query),
		ReplacementStart: lineStart + colon,
	}, true
}

// detectFence matches a line that starts with exactly three backticks; the
// remainder is the candidate language tag.
func detectFence(lineSoFar []rune, lineStart int) (Match, bool) {
	if len(lineSoFar) < 3 {
		return Match{}, false
	}
	if string(lineSoFar[:3]) != "```" {
		return Match{}, false
	}
	if len(lineSoFar) > 3 && lineSoFar[3] == '`' {
		return Match{}, false
	}
	return Match{
		Definition:       definitionFor("```"),
		Query:            string(lineSoFar[3:]),
		ReplacementStart: lineStart,
	}, true
}

func detectLineStart(lineSoFar []rune, lineStart int) (Match, bool) {
	line := string(lineSoFar)
	for _, seq := range lineStartSequences {
		if seq == "#" {
			if !headingRunRE.MatchString(line) {
				continue
			}
			return Match{
				Definition:       definitionFor("#"),
				Query:            line[:strings.LastIndex(line, "#")+1],
				ReplacementStart: lineStart,
			}, true
		}
		// The other block triggers fire only when the line is exactly the
		// lone trigger character, not on every keystroke of a line that
		// happens to start with it.
		if line == seq {
			return Match{
				Definition:       definitionFor(seq),
				Query:            line,
				ReplacementStart: lineStart,
			}, true
		}
	}
	return Match{}, false
}

// detectLink matches when the character immediately before the cursor is
// `[`, or is `!` as the very first character of the line.
func detectLink(lineSoFar []rune, cursor int) (Match, bool) {
	if len(lineSoFar) == 0 {
		return Match{}, false
	}
	prev := lineSoFar[len(lineSoFar)-1]
	if prev == '[' {
		return Match{
			Definition:       definitionFor("["),
			ReplacementStart: cursor - 1,
		}, true
	}
	if prev == '!' && len(lineSoFar) == 1 {
		return Match{
			Definition:       definitionFor("!"),
			ReplacementStart: cursor - 1,
		}, true
	}
	return Match{}, false
}
