package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client represents an HTTP client for the card manager API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// The server answers unauthenticated requests with a redirect
			// to the login page. Surface that instead of following it.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Viewer represents the signed-in user
type Viewer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SessionResponse represents the current session state
type SessionResponse struct {
	Viewer          *Viewer `json:"viewer"`
	IsAuthenticated bool    `json:"is_authenticated"`
	IsLoading       bool    `json:"is_loading"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Card represents a business card
type Card struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Name      string `json:"name"`
	Job       string `json:"job"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Website   string `json:"website"`
	Template  string `json:"template"`
	QRCode    string `json:"qr_code"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// Login signs in with the given credentials
func (c *Client) Login(email, password string) (*Viewer, error) {
	reqBody := LoginRequest{
		Email:    email,
		Password: password,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.httpClient.Post(
		fmt.Sprintf("%s/api/auth/login", c.baseURL),
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("login failed (status %d): %s", resp.StatusCode, string(body))
	}

	var session SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return session.Viewer, nil
}

// Logout signs out the current session
func (c *Client) Logout() error {
	req, err := http.NewRequest(
		"POST",
		fmt.Sprintf("%s/api/auth/logout", c.baseURL),
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusFound:
		return fmt.Errorf("not signed in")
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("logout failed (status %d): %s", resp.StatusCode, string(body))
	}
}

// Session returns the current session state
func (c *Client) Session() (*SessionResponse, error) {
	resp, err := c.httpClient.Get(fmt.Sprintf("%s/api/auth/session", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusFound:
		return &SessionResponse{}, nil
	case http.StatusServiceUnavailable:
		return &SessionResponse{IsLoading: true}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to fetch session (status %d): %s", resp.StatusCode, string(body))
	}

	var session SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &session, nil
}

// ListCards returns the signed-in user's cards
func (c *Client) ListCards() ([]Card, error) {
	resp, err := c.httpClient.Get(fmt.Sprintf("%s/api/cards", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusFound {
		return nil, fmt.Errorf("not signed in. Run 'nfccards login' first")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to list cards (status %d): %s", resp.StatusCode, string(body))
	}

	var cards []Card
	if err := json.NewDecoder(resp.Body).Decode(&cards); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return cards, nil
}

// GetCard returns a single card by ID
func (c *Client) GetCard(cardID string) (*Card, error) {
	resp, err := c.httpClient.Get(fmt.Sprintf("%s/api/cards/%s", c.baseURL, cardID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusFound {
		return nil, fmt.Errorf("not signed in. Run 'nfccards login' first")
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("card %q not found", cardID)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to fetch card (status %d): %s", resp.StatusCode, string(body))
	}

	var card Card
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &card, nil
}
