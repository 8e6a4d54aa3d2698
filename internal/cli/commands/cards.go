package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papecode/nfc-card-demo/internal/cli/client"
)

// CardsClient is the API surface the card commands need
type CardsClient interface {
	ListCards() ([]client.Card, error)
	GetCard(cardID string) (*client.Card, error)
}

type cardsOptions struct {
	client CardsClient
	output io.Writer
}

// CardsOption configures the card commands
type CardsOption func(*cardsOptions)

// WithCardsClient overrides the API client
func WithCardsClient(c CardsClient) CardsOption {
	return func(o *cardsOptions) { o.client = c }
}

// WithCardsOutput overrides the output writer
func WithCardsOutput(w io.Writer) CardsOption {
	return func(o *cardsOptions) { o.output = w }
}

// NewCardsCmd creates the cards command group
func NewCardsCmd() *cobra.Command {
	var serverFlag string

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage your business cards",
	}

	cmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Server URL (defaults to NFC_SERVER_URL or "+defaultServerURL+")")

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCardsList(WithCardsClient(newClient(serverFlag)))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a single card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCardsShow(args[0], WithCardsClient(newClient(serverFlag)))
		},
	})

	return cmd
}

func runCardsList(opts ...CardsOption) error {
	o := cardsOptions{output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	cards, err := o.client.ListCards()
	if err != nil {
		return err
	}

	if len(cards) == 0 {
		fmt.Fprintln(o.output, "No cards found.")
		return nil
	}

	w := tabwriter.NewWriter(o.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTEMPLATE\tACTIVE")
	for _, card := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", card.ID, card.Name, card.Template, card.IsActive)
	}
	return w.Flush()
}

func runCardsShow(cardID string, opts ...CardsOption) error {
	o := cardsOptions{output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	card, err := o.client.GetCard(cardID)
	if err != nil {
		return err
	}

	fmt.Fprintf(o.output, "ID:       %s\n", card.ID)
	fmt.Fprintf(o.output, "Name:     %s\n", card.Name)
	if card.Job != "" {
		fmt.Fprintf(o.output, "Job:      %s\n", card.Job)
	}
	if card.Company != "" {
		fmt.Fprintf(o.output, "Company:  %s\n", card.Company)
	}
	if card.Email != "" {
		fmt.Fprintf(o.output, "Email:    %s\n", card.Email)
	}
	if card.Phone != "" {
		fmt.Fprintf(o.output, "Phone:    %s\n", card.Phone)
	}
	if card.Website != "" {
		fmt.Fprintf(o.output, "Website:  %s\n", card.Website)
	}
	fmt.Fprintf(o.output, "Template: %s\n", card.Template)
	fmt.Fprintf(o.output, "Active:   %t\n", card.IsActive)
	fmt.Fprintf(o.output, "QR code:  %s\n", card.QRCode)
	return nil
}
