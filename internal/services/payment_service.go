package services

import (
	"context"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/aureeture/careerhub/internal/config"
)

var ErrPaymentNotCaptured = errors.New("payment not captured")

// PaymentService verifies payments against Razorpay. Without credentials
// it accepts every payment ID, which keeps free and development bookings
// working.
type PaymentService struct {
	client *razorpay.Client
}

func NewPaymentService(cfg *config.Config) *PaymentService {
	s := &PaymentService{}
	if cfg.RazorpayKeyID != "" && cfg.RazorpaySecret != "" {
		s.client = razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpaySecret)
	}
	return s
}

func (s *PaymentService) VerifyPayment(ctx context.Context, paymentID string) error {
	if s.client == nil {
		return nil
	}

	payment, err := s.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return fmt.Errorf("fetch payment %s: %w", paymentID, err)
	}

	status, _ := payment["status"].(string)
	if status != "captured" {
		return fmt.Errorf("%w: status %q", ErrPaymentNotCaptured, status)
	}
	return nil
}
