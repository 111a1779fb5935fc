package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
	"github.com/smallbiznis/smartdairy/internal/config"
	"github.com/smallbiznis/smartdairy/internal/notification/domain"
	"github.com/smallbiznis/smartdairy/internal/observability/metrics"
	"github.com/smallbiznis/smartdairy/internal/providers/whatsapp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Settings *config.SettingsHolder
	Sender   whatsapp.Provider
	Metrics  *metrics.Metrics `optional:"true"`
}

type Service struct {
	log      *zap.Logger
	settings *config.SettingsHolder
	sender   whatsapp.Provider
	metrics  *metrics.Metrics
}

func NewService(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("notification.service"),
		settings: p.Settings,
		sender:   p.Sender,
		metrics:  p.Metrics,
	}
}

func (s *Service) Message(bill billingdomain.CustomerBill, result billingdomain.BillingResult) string {
	return formatMessage(s.settings.Get().BrandName, bill, result)
}

func (s *Service) NormalizeContact(contact string) string {
	msg := s.settings.Get().Messaging
	return normalizeContact(contact, msg.DefaultCountryCode, msg.LocalNumberLength)
}

func (s *Service) Link(bill billingdomain.CustomerBill, result billingdomain.BillingResult) string {
	to := s.contactOf(bill)
	if to == "" {
		return ""
	}
	text := strings.ReplaceAll(url.QueryEscape(s.Message(bill, result)), "+", "%20")
	return fmt.Sprintf("https://%s/%s?text=%s", s.settings.Get().Messaging.Host, to, text)
}

func (s *Service) Build(bill billingdomain.CustomerBill, result billingdomain.BillingResult) domain.Notification {
	return domain.Notification{
		CustomerID: bill.CustomerID,
		Contact:    s.contactOf(bill),
		Message:    s.Message(bill, result),
		Link:       s.Link(bill, result),
	}
}

func (s *Service) Send(ctx context.Context, bill billingdomain.CustomerBill, result billingdomain.BillingResult) domain.Outcome {
	to := s.contactOf(bill)
	if to == "" {
		s.metrics.RecordNotification(ctx, s.sender.Name(), "no_contact")
		return domain.Outcome{Sent: false, Message: "Mobile number not found for this customer"}
	}

	err := s.sender.Send(ctx, whatsapp.Message{To: to, Text: s.Message(bill, result)})
	if err != nil {
		s.metrics.RecordNotification(ctx, s.sender.Name(), "failed")
		s.log.Warn("bill dispatch failed",
			zap.Int64("customer_id", bill.CustomerID),
			zap.String("period", result.Period()),
			zap.Error(err),
		)
		if errors.Is(err, whatsapp.ErrDisabled) {
			return domain.Outcome{Sent: false, Message: "Automatic sending is not configured; use the WhatsApp link instead"}
		}
		return domain.Outcome{Sent: false, Message: fmt.Sprintf("Error sending WhatsApp message: %v", err)}
	}

	s.metrics.RecordNotification(ctx, s.sender.Name(), "sent")
	s.log.Info("bill dispatched",
		zap.Int64("customer_id", bill.CustomerID),
		zap.String("period", result.Period()),
	)
	return domain.Outcome{Sent: true, Message: fmt.Sprintf("Bill sent successfully to %s at %s", bill.Name, to)}
}

func (s *Service) contactOf(bill billingdomain.CustomerBill) string {
	if bill.Contact == nil {
		return ""
	}
	return s.NormalizeContact(*bill.Contact)
}
