package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papecode/nfc-card-demo/internal/cli/client"
)

// LoginClient is the API surface the login command needs
type LoginClient interface {
	Login(email, password string) (*client.Viewer, error)
}

// loginOptions holds the configurable dependencies for testing
type loginOptions struct {
	client LoginClient
	input  io.Reader
	output io.Writer
}

// LoginOption configures runLogin
type LoginOption func(*loginOptions)

// WithLoginClient overrides the API client
func WithLoginClient(c LoginClient) LoginOption {
	return func(o *loginOptions) { o.client = c }
}

// WithLoginInput overrides the prompt input
func WithLoginInput(r io.Reader) LoginOption {
	return func(o *loginOptions) { o.input = r }
}

// WithLoginOutput overrides the output writer
func WithLoginOutput(w io.Writer) LoginOption {
	return func(o *loginOptions) { o.output = w }
}

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var serverFlag string
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the card manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, WithLoginClient(newClient(serverFlag)))
		},
	}

	cmd.Flags().StringVar(&serverFlag, "server", "", "Server URL (defaults to NFC_SERVER_URL or "+defaultServerURL+")")
	cmd.Flags().StringVar(&email, "email", "", "Email address (prompted if not given)")

	return cmd
}

func runLogin(email string, opts ...LoginOption) error {
	o := loginOptions{
		input:  os.Stdin,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	reader := bufio.NewReader(o.input)

	if email == "" {
		fmt.Fprint(o.output, "Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	fmt.Fprint(o.output, "Password: ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimSpace(line)

	viewer, err := o.client.Login(email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(o.output, "Signed in as %s <%s> (%s)\n", viewer.Name, viewer.Email, viewer.Role)
	return nil
}
