package vars

import "strings"

// StrToBool parses the loose boolean spellings accepted on the command line.
// Unknown strings are false.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
