package jsx

import "regexp"

// boundary is the classic fragment pattern. Group 1 is the leading context,
// group 2 the fragment and group 3 the trailing context. Only group 2 is
// replaced; the context groups are reproduced verbatim.
var boundary = regexp.MustCompile(
	`(.?|\(\n.*|\n\n.*)` +
		`(<\w[^\x00]*?[^/]>[^\x00]*?</.*>)` +
		`(\n\n|\)\n\n|\);|\n\)|\n\}| }|}\n|.*\n.\);|.*\n.\))`,
)

// findPattern locates the next fragment matched by boundary. The search
// resumes after the trailing context of the match.
func findPattern(s string, from int) span {
	if from >= len(s) {
		return span{}
	}

	m := boundary.FindStringSubmatchIndex(s[from:])
	if m == nil {
		return span{}
	}

	return span{
		start:  from + m[4],
		end:    from + m[5],
		resume: from + m[1],
		ok:     true,
	}
}
