// Package whatsapp composes outbound order messages and the wa.me deep
// links that carry them. Formatting is pure; the Navigator collaborator
// owns the side effect of actually opening a chat.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

const chatDomain = "https://wa.me"

// ProductOrderMessage renders a direct single-product order message.
// Size and color lines appear only when a variant was selected.
func ProductOrderMessage(name string, price float64, quantity int, size, color string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I'd like to order:\n\n• %s x%d - $%.2f", name, quantity, price*float64(quantity))
	if size != "" {
		fmt.Fprintf(&b, "\nSize: %s", size)
	}
	if color != "" {
		fmt.Fprintf(&b, "\nColor: %s", color)
	}
	b.WriteString("\n\nPlease confirm availability and shipping details.")
	return b.String()
}

// GeneralInquiryMessage is the opener used by the storefront's chat entry
// points that are not tied to a product.
func GeneralInquiryMessage() string {
	return "Hi, I'd like to know more about your products."
}

// DeliveryDetails appends the delivery address block to an order message.
// Callers gate on both fields being present before dispatch; this
// function only formats.
func DeliveryDetails(base, address, pincode string) string {
	return fmt.Sprintf("%s\n\n📍 Delivery Address:\n%s\n\n📮 Pincode: %s", base, address, pincode)
}

// queryEncoder rewrites url.QueryEscape output to the encoding browsers
// produce for query components: spaces as %20, and the marks ! ' ( ) *
// left bare. Safe because QueryEscape emits '%' only as an escape
// initiator, so each %XX below is exactly the escape of that mark.
var queryEncoder = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// ChatURL builds the deep link that opens a chat with the recipient
// number, with the message prefilled. The message encoding is
// byte-identical to a browser's encodeURIComponent.
func ChatURL(number, message string) string {
	return fmt.Sprintf("%s/%s?text=%s", chatDomain, number, queryEncoder.Replace(url.QueryEscape(message)))
}

// Navigator opens a chat URL in a new browsing context. Dispatch is
// fire-and-forget: there is no acknowledgment channel back to the caller.
type Navigator interface {
	OpenChat(chatURL string)
}

// LogNavigator records dispatches in the structured log. It stands in for
// a real browsing context in the service deployment, where the client
// receives the URL and opens it itself.
type LogNavigator struct{}

func (LogNavigator) OpenChat(chatURL string) {
	log.WithField("url", chatURL).Info("whatsapp chat dispatched")
}
