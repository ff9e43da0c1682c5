package domain

import (
	"fmt"
	"time"
)

// Channel tags which charge strategy produced a request.
type Channel string

const (
	ChannelCheckout Channel = "checkout"
	ChannelPix      Channel = "pix"
	ChannelCard     Channel = "card"
)

// ExternalReference builds the correlation string attached to a charge.
// Millisecond resolution only: two requests for the same product and
// channel in the same millisecond share a reference.
func ExternalReference(productID string, channel Channel, at time.Time) string {
	return fmt.Sprintf("%s-%s-%d", productID, channel, at.UnixMilli())
}
