package commands

import (
	"os"

	"github.com/papecode/nfc-card-demo/internal/cli/client"
)

const defaultServerURL = "http://localhost:8080"

// serverURL resolves the API base URL from the --server flag
// or the NFC_SERVER_URL environment variable.
func serverURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("NFC_SERVER_URL"); env != "" {
		return env
	}
	return defaultServerURL
}

func newClient(flagValue string) *client.Client {
	return client.New(serverURL(flagValue))
}
