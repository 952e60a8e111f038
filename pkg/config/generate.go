package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the defaults file with every value commented
// out, ready to be used as a starting user configuration.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// commentOutConfigValues comments out every value line, keeping comments,
// blank lines and section headers. Continuation lines of multi-line arrays
// are commented too.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && !strings.Contains(trimmed, "=") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
