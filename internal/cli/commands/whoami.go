package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/papecode/nfc-card-demo/internal/cli/client"
)

// WhoamiClient is the API surface the whoami command needs
type WhoamiClient interface {
	Session() (*client.SessionResponse, error)
}

type whoamiOptions struct {
	client WhoamiClient
	output io.Writer
}

// WhoamiOption configures runWhoami
type WhoamiOption func(*whoamiOptions)

// WithWhoamiClient overrides the API client
func WithWhoamiClient(c WhoamiClient) WhoamiOption {
	return func(o *whoamiOptions) { o.client = c }
}

// WithWhoamiOutput overrides the output writer
func WithWhoamiOutput(w io.Writer) WhoamiOption {
	return func(o *whoamiOptions) { o.output = w }
}

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var serverFlag string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(WithWhoamiClient(newClient(serverFlag)))
		},
	}

	cmd.Flags().StringVar(&serverFlag, "server", "", "Server URL (defaults to NFC_SERVER_URL or "+defaultServerURL+")")

	return cmd
}

func runWhoami(opts ...WhoamiOption) error {
	o := whoamiOptions{output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	session, err := o.client.Session()
	if err != nil {
		return err
	}

	switch {
	case session.IsLoading:
		fmt.Fprintln(o.output, "Session is still restoring. Try again in a moment.")
	case session.Viewer == nil:
		fmt.Fprintln(o.output, "Not signed in.")
	default:
		fmt.Fprintf(o.output, "%s <%s> (%s)\n", session.Viewer.Name, session.Viewer.Email, session.Viewer.Role)
	}

	return nil
}
