package api

import "strings"

// SectionProbeOrder is the order in which sections are probed when a bare
// name carries no parseable section suffix. Common sections (user commands,
// admin commands) come first to keep the probe count low for typical lookups.
var SectionProbeOrder = []string{"1", "8", "6", "2", "3", "5", "7", "4", "9", "3p"}

// splitSection splits a trailing ".<section>" suffix off a bare page name.
// A suffix counts as a section when it is the literal "n" or begins with an
// ASCII digit ("ls.1", "intro.3p", "tclsh.n"); anything else, including names
// without a dot, reports ok=false.
func splitSection(name string) (base, section string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", "", false
	}
	suffix := name[i+1:]
	if suffix == "n" || (suffix != "" && suffix[0] >= '0' && suffix[0] <= '9') {
		return name[:i], suffix, true
	}
	return "", "", false
}
