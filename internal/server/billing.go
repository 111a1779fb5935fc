package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
	invoicedomain "github.com/smallbiznis/smartdairy/internal/invoice/domain"
)

func (s *Server) GetMonthlyBill(c *gin.Context) {
	result, ok := s.calculate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (s *Server) DownloadInvoice(c *gin.Context) {
	format, err := invoicedomain.ParseFormat(c.Param("format"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	result, ok := s.calculate(c)
	if !ok {
		return
	}

	doc, err := s.invoiceSvc.Export(c.Request.Context(), format, result)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writeDocument(c, doc)
}

func (s *Server) GetBillNotification(c *gin.Context) {
	bill, result, ok := s.customerBill(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": s.notificationSvc.Build(bill, result)})
}

func (s *Server) SendBillNotification(c *gin.Context) {
	bill, result, ok := s.customerBill(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": s.notificationSvc.Send(c.Request.Context(), bill, result)})
}

func (s *Server) calculate(c *gin.Context) (billingdomain.BillingResult, bool) {
	year, month, err := parsePeriod(c.Param("year"), c.Param("month"))
	if err != nil {
		AbortWithError(c, err)
		return billingdomain.BillingResult{}, false
	}

	result, err := s.billingSvc.Calculate(c.Request.Context(), year, month)
	if err != nil {
		AbortWithError(c, err)
		return billingdomain.BillingResult{}, false
	}
	return result, true
}

// customerBill finds the customer's line in the month; a customer with no
// deliveries that month has no bill to send.
func (s *Server) customerBill(c *gin.Context) (billingdomain.CustomerBill, billingdomain.BillingResult, bool) {
	customerID := customerIDFrom(c)
	if _, err := s.customerSvc.GetByID(c.Request.Context(), customerID); err != nil {
		AbortWithError(c, err)
		return billingdomain.CustomerBill{}, billingdomain.BillingResult{}, false
	}

	result, ok := s.calculate(c)
	if !ok {
		return billingdomain.CustomerBill{}, billingdomain.BillingResult{}, false
	}
	bill, found := result.Find(customerID)
	if !found {
		AbortWithError(c, billingdomain.ErrNoBill)
		return billingdomain.CustomerBill{}, billingdomain.BillingResult{}, false
	}
	return bill, result, true
}
