package provider

import (
	"fmt"
	"os"
)

// Credential authorizes calls against one generation endpoint.
type Credential struct {
	Kind   string
	Secret string
}

const KindGemini = "gemini"

// LoadCredentials reads GEMINI_API_KEY plus any number of additional
// GEMINI_API_KEY_2, GEMINI_API_KEY_3, ... entries. The numbered sequence is
// open-ended: discovery stops at the first missing entry. Called once at
// startup; the result is treated as immutable.
func LoadCredentials() []Credential {
	var creds []Credential

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		creds = append(creds, Credential{Kind: KindGemini, Secret: key})
	}
	for i := 2; ; i++ {
		key := os.Getenv(fmt.Sprintf("GEMINI_API_KEY_%d", i))
		if key == "" {
			break
		}
		creds = append(creds, Credential{Kind: KindGemini, Secret: key})
	}

	return creds
}
