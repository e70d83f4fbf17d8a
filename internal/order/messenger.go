package order

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"solestore/internal/logger"

	"go.uber.org/zap"
)

// Messenger initiates the order handoff. Delivery happens outside this
// system's visibility; initiating the link is the sole success
// criterion.
type Messenger interface {
	Send(ctx context.Context, link string) error
}

// DeepLink builds the fixed-destination messaging link carrying the
// composed order text, URL-encoded.
func DeepLink(contact, message string) string {
	return "https://wa.me/" + contact + "?text=" + url.QueryEscape(message)
}

// LinkMessenger hands the deep link to the customer by writing it to
// Out, where they can follow it into the messaging app.
type LinkMessenger struct {
	Out io.Writer
}

func (m *LinkMessenger) Send(ctx context.Context, link string) error {
	if _, err := fmt.Fprintln(m.Out, link); err != nil {
		return fmt.Errorf("%w: %v", ErrHandoffFailed, err)
	}
	logger.L().Info("order handed off", zap.Int("link_length", len(link)))
	return nil
}
