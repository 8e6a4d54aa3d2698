// Package qr derives the public view link for a card and the URL of a QR
// image encoding it. Image rendering is delegated to an external QR service;
// this package only builds URLs.
package qr

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	defaultImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
	defaultImageSize     = "150x150"
)

// LinkBuilder builds card links rooted at the service's public base URL.
type LinkBuilder struct {
	baseURL       string
	imageEndpoint string
	imageSize     string
}

// NewLinkBuilder creates a builder for the given public base URL
// (e.g. "http://localhost:8080").
func NewLinkBuilder(baseURL string) *LinkBuilder {
	return &LinkBuilder{
		baseURL:       strings.TrimRight(baseURL, "/"),
		imageEndpoint: defaultImageEndpoint,
		imageSize:     defaultImageSize,
	}
}

// PublicViewURL returns the shareable read-only profile link for a card.
func (b *LinkBuilder) PublicViewURL(cardID string) string {
	return fmt.Sprintf("%s/cards/%s/view", b.baseURL, cardID)
}

// ImageURL returns the URL of a QR image encoding the card's public view
// link.
func (b *LinkBuilder) ImageURL(cardID string) string {
	q := url.Values{}
	q.Set("size", b.imageSize)
	q.Set("data", b.PublicViewURL(cardID))
	return b.imageEndpoint + "?" + q.Encode()
}
