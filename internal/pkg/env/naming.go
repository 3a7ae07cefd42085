package env

import (
	"strings"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// Prefix of all ENV variables read by the CLI.
const Prefix = "CRM_"

type NamingConvention struct {
	prefix string
}

func NewNamingConvention(prefix string) *NamingConvention {
	return &NamingConvention{prefix: prefix}
}

// FlagToEnv converts flag name to ENV variable name,
// for example "api-url" -> "CRM_API_URL".
func (n *NamingConvention) FlagToEnv(flagName string) string {
	if flagName == "" {
		panic(errors.New("flag name cannot be empty"))
	}
	return n.prefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// Files lists dotenv files in the order of precedence.
func Files() []string {
	return []string{
		".env.local",
		".env",
	}
}
