package config

import (
	"os"
	"strings"
)

// Environment selects where configuration is read from.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads the runtime environment from CI and ENV.
// CI=true wins over ENV; unrecognized values fall back to development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// ParseEnvironment maps an ENV value to an Environment. Short forms
// such as "prod" and "dev" are accepted.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	case "ci":
		return CI
	default:
		return Development
	}
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}

// LoadsDotEnv reports whether a .env file is consulted in e.
func (e Environment) LoadsDotEnv() bool {
	return e == Development || e == Test
}
