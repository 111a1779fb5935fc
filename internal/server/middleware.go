package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smallbiznis/smartdairy/internal/invoice/domain"
	obscontext "github.com/smallbiznis/smartdairy/internal/observability/context"
)

const customerIDKey = "customer_id"

// CustomerContext validates the :id path param and tags the request context
// so logs and spans carry the customer id.
func (s *Server) CustomerContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.Set(customerIDKey, id)
		c.Request = c.Request.WithContext(obscontext.WithCustomerID(c.Request.Context(), id))
		c.Next()
	}
}

func customerIDFrom(c *gin.Context) int64 {
	return c.GetInt64(customerIDKey)
}

func writeDocument(c *gin.Context, doc invoicedomain.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
