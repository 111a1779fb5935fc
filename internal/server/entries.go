package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
	"github.com/smallbiznis/smartdairy/pkg/date"
)

type upsertEntryRequest struct {
	CustomerID int64     `json:"customer_id"`
	EntryDate  date.Date `json:"entry_date"`
	Quantity   *float64  `json:"quantity"`
}

func (s *Server) UpsertEntry(c *gin.Context) {
	var req upsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.CustomerID <= 0 {
		AbortWithError(c, newValidationError("customer_id", "invalid_customer_id", "customer_id is required"))
		return
	}
	if req.Quantity == nil {
		AbortWithError(c, newValidationError("quantity", "required", "quantity is required"))
		return
	}

	resp, err := s.deliverySvc.Upsert(c.Request.Context(), deliverydomain.UpsertEntryRequest{
		CustomerID: req.CustomerID,
		EntryDate:  req.EntryDate,
		Quantity:   *req.Quantity,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEntries(c *gin.Context) {
	req, err := entriesQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.deliverySvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ExportEntries(c *gin.Context) {
	req, err := entriesQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	views, err := s.deliverySvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	doc, err := s.invoiceSvc.ExportEntries(c.Request.Context(), views)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writeDocument(c, doc)
}

func entriesQuery(c *gin.Context) (deliverydomain.ListEntriesRequest, error) {
	start, err := parseOptionalDate(c.Query("start_date"))
	if err != nil {
		return deliverydomain.ListEntriesRequest{}, newValidationError("start_date", "invalid_start_date", "start_date must be YYYY-MM-DD")
	}
	end, err := parseOptionalDate(c.Query("end_date"))
	if err != nil {
		return deliverydomain.ListEntriesRequest{}, newValidationError("end_date", "invalid_end_date", "end_date must be YYYY-MM-DD")
	}
	return deliverydomain.ListEntriesRequest{StartDate: start, EndDate: end}, nil
}
