package service

import (
	"fmt"
	"strings"

	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
)

const rule = "━━━━━━━━━━━━━━━━━━━━"

func formatMessage(brand string, bill billingdomain.CustomerBill, result billingdomain.BillingResult) string {
	lines := []string{
		fmt.Sprintf("🐄 *%s - Monthly Invoice*", brand),
		"",
		fmt.Sprintf("*Customer:* %s", bill.Name),
		fmt.Sprintf("*Period:* %s", result.Period()),
		"",
		"*Billing Details:*",
		rule,
		fmt.Sprintf("📊 Total Litres: %s L", bill.TotalLitres.StringFixed(2)),
		fmt.Sprintf("💰 Rate per Litre: ₹%s", bill.PricePerLtr.StringFixed(2)),
		fmt.Sprintf("💵 *Total Amount: ₹%s*", bill.TotalAmount.StringFixed(2)),
		rule,
		"",
		"Thank you for your business!",
		fmt.Sprintf("_This is an automated message from %s System_", brand),
	}
	return strings.Join(lines, "\n")
}

// normalizeContact keeps digits and a leading plus. A bare local number gets
// the country code prefixed; anything longer is assumed to carry one already.
func normalizeContact(contact, countryCode string, localLength int) string {
	contact = strings.TrimSpace(contact)
	var b strings.Builder
	for i, r := range contact {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" || clean == "+" {
		return ""
	}
	if !strings.HasPrefix(clean, "+") && len(clean) == localLength {
		return countryCode + clean
	}
	return clean
}
