package qrcode

import (
	"net/url"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// Generate creates a QR code PNG image for the given URL.
func Generate(link string, size int) ([]byte, error) {
	return qr.Encode(link, qr.Medium, size)
}

// JoinURL builds the link players scan to join a game.
func JoinURL(base, gameID string) string {
	q := url.Values{}
	q.Set("game", gameID)
	return strings.TrimRight(base, "/") + "/join?" + q.Encode()
}
