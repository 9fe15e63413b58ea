package compose

import (
	"strings"

	"github.com/mattn/go-shellwords"
)

// Canonical keys for the recognized ExtraParams flags.
const (
	KeyRestart  = "restart"
	KeyNetworks = "networks"
)

// extraParamFlags maps each recognized docker run flag to its canonical
// output key. A static table, iterated directly.
var extraParamFlags = map[string]string{
	"--restart": KeyRestart,
	"--net":     KeyNetworks,
	"--network": KeyNetworks,
}

// ParseExtraParams extracts the recognized subset of docker run flags
// from the free-form ExtraParams tag. Both "--flag value" and
// "--flag=value" forms are accepted; unknown flags and bare tokens are
// ignored, and a repeated flag keeps its last value.
func ParseExtraParams(raw string) map[string]string {
	tokens, err := shellwords.Parse(raw)
	if err != nil {
		// Unbalanced quoting; fall back to whitespace splitting so a
		// sloppy template still yields its recognizable flags.
		tokens = strings.Fields(raw)
	}

	params := map[string]string{}
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		flag, value := token, ""
		hasValue := false
		if eq := strings.IndexByte(token, '='); eq >= 0 {
			flag, value = token[:eq], token[eq+1:]
			hasValue = true
		}

		key, ok := extraParamFlags[flag]
		if !ok {
			continue
		}
		if !hasValue {
			if i+1 >= len(tokens) {
				continue
			}
			i++
			value = tokens[i]
		}
		params[key] = value
	}
	return params
}
