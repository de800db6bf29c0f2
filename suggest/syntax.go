package suggest

import "github.com/minxiang0101/markdown/trigger"

type syntaxEntry struct {
	id     string
	label  string
	insert string
	desc   string
}

// syntaxTable maps each line-start trigger character to its snippet list.
// Candidates are returned in declaration order; the query does not filter
// them (the query is the trigger run itself).
var syntaxTable = map[string][]syntaxEntry{
	"#": {
		{id: "heading-1", label: "# Heading 1", insert: "# ", desc: "page title"},
		{id: "heading-2", label: "## Heading 2", insert: "## ", desc: "section"},
		{id: "heading-3", label: "### Heading 3", insert: "### ", desc: "subsection"},
		{id: "heading-4", label: "#### Heading 4", insert: "#### ", desc: "level 4"},
		{id: "heading-5", label: "##### Heading 5", insert: "##### ", desc: "level 5"},
		{id: "heading-6", label: "###### Heading 6", insert: "###### ", desc: "level 6"},
	},
	"-": {
		{id: "bullet", label: "- item", insert: "- ", desc: "bullet list"},
		{id: "task", label: "- [ ] task", insert: "- [ ] ", desc: "open task"},
		{id: "task-done", label: "- [x] task", insert: "- [x] ", desc: "done task"},
		{id: "rule-dash", label: "---", insert: "---\n", desc: "horizontal rule"},
	},
	"*": {
		{id: "bullet-star", label: "* item", insert: "* ", desc: "bullet list"},
		{id: "rule-star", label: "***", insert: "***\n", desc: "horizontal rule"},
	},
	">": {
		{id: "quote", label: "> quote", insert: "> ", desc: "block quote"},
		{id: "quote-nested", label: ">> quote", insert: ">> ", desc: "nested quote"},
	},
	"|": {
		{
			id:     "table-2col",
			label:  "| table | 2 columns |",
			insert: "| Column 1 | Column 2 |\n| --- | --- |\n|  |  |\n",
			desc:   "2-column table",
		},
		{
			id:     "table-3col",
			label:  "| table | 3 | columns |",
			insert: "| Column 1 | Column 2 | Column 3 |\n| --- | --- | --- |\n|  |  |  |\n",
			desc:   "3-column table",
		},
	},
}

func syntaxCandidates(seq string) []Candidate {
	entries := syntaxTable[seq]
	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		out = append(out, Candidate{
			ID:          e.id,
			Label:       e.label,
			InsertText:  e.insert,
			Description: e.desc,
			Kind:        trigger.KindHeadingBlock,
		})
	}
	return out
}
