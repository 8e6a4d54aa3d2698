package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// LogoutClient is the API surface the logout command needs
type LogoutClient interface {
	Logout() error
}

type logoutOptions struct {
	client LogoutClient
	output io.Writer
}

// LogoutOption configures runLogout
type LogoutOption func(*logoutOptions)

// WithLogoutClient overrides the API client
func WithLogoutClient(c LogoutClient) LogoutOption {
	return func(o *logoutOptions) { o.client = c }
}

// WithLogoutOutput overrides the output writer
func WithLogoutOutput(w io.Writer) LogoutOption {
	return func(o *logoutOptions) { o.output = w }
}

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	var serverFlag string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the card manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(WithLogoutClient(newClient(serverFlag)))
		},
	}

	cmd.Flags().StringVar(&serverFlag, "server", "", "Server URL (defaults to NFC_SERVER_URL or "+defaultServerURL+")")

	return cmd
}

func runLogout(opts ...LogoutOption) error {
	o := logoutOptions{output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.client.Logout(); err != nil {
		return err
	}

	fmt.Fprintln(o.output, "Signed out.")
	return nil
}
