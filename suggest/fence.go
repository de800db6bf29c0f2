package suggest

import "github.com/minxiang0101/markdown/trigger"

// fenceLanguages is the fixed, de-duplicated list of common code-fence
// language tags, in display order. The first entry is the generic fence.
var fenceLanguages = []string{
	"",
	"go",
	"python",
	"javascript",
	"typescript",
	"java",
	"c",
	"cpp",
	"csharp",
	"rust",
	"ruby",
	"php",
	"swift",
	"kotlin",
	"scala",
	"bash",
	"shell",
	"powershell",
	"sql",
	"html",
	"css",
	"json",
	"yaml",
	"toml",
	"xml",
	"markdown",
	"dockerfile",
	"makefile",
	"diff",
	"lua",
	"perl",
	"r",
	"haskell",
}

// FenceBodyOffset returns the rune offset inside insert where the cursor
// should land after accepting a fence: one past the blank line between the
// two fence markers. Falls back to the end of insert when the snippet has no
// blank line.
func FenceBodyOffset(insert string) int {
	runes := []rune(insert)
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == '\n' && runes[i+1] == '\n' {
			return i + 1
		}
	}
	return len(runes)
}

func fenceCandidates(query string) []Candidate {
	out := make([]Candidate, 0, len(fenceLanguages))
	for _, tag := range fenceLanguages {
		label := tag
		desc := "code block"
		if tag == "" {
			label = "plain"
			desc = "plain code block"
		}
		if !matchesQuery(query, label) {
			continue
		}
		out = append(out, Candidate{
			ID:          "fence-" + label,
			Label:       "``` " + label,
			InsertText:  "```" + tag + "\n\n```",
			Description: desc,
			Kind:        trigger.KindFencedCode,
		})
	}
	return out
}
