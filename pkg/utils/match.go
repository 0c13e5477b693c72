package utils

import "strings"

func MatchesAny(msg, prefix string, variants []string) bool {
	for _, v := range variants {
		prefixVariant := strings.ToLower(prefix + strings.TrimPrefix(v, prefix))
		if strings.HasPrefix(strings.ToLower(msg), prefixVariant) {
			return true
		}
	}

	return false
}

// MatchesCommand accepts "/cmd" and "/cmd some value" but not "/cmdx".
func MatchesCommand(msg, command string) bool {
	msg = strings.ToLower(strings.TrimSpace(msg))
	command = strings.ToLower(command)

	if msg == command {
		return true
	}

	return strings.HasPrefix(msg, command+" ")
}

func MatchesCommands(msg string, commands []string) bool {
	for _, c := range commands {
		if MatchesCommand(msg, c) {
			return true
		}
	}

	return false
}

func ExtractCommandValue(msg, command string) string {
	msg = strings.TrimSpace(msg)
	if len(msg) < len(command) || !strings.EqualFold(msg[:len(command)], command) {
		return ""
	}

	return strings.TrimSpace(msg[len(command):])
}
