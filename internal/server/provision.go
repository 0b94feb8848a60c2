package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	provisioningdomain "github.com/julinemart/vendorid/internal/provisioning/domain"
)

type ProvisionRequest struct {
	VendorCode string `json:"vendor_code"`
	VendorName string `json:"vendor_name"`
	Email      string `json:"email"`
}

type ProvisionResponse struct {
	Success     bool   `json:"success"`
	VendorCode  string `json:"vendor_code"`
	VendorName  string `json:"vendor_name"`
	Email       string `json:"email"`
	IsNewVendor bool   `json:"isNewVendor"`
	AuthCreated bool   `json:"authCreated"`
	EmailSent   bool   `json:"emailSent"`
	UserID      string `json:"userId,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Message     string `json:"message"`
}

func (s *Server) ProvisionVendor(c *gin.Context) {
	var req ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if strings.TrimSpace(req.VendorCode) == "" ||
		strings.TrimSpace(req.VendorName) == "" ||
		strings.TrimSpace(req.Email) == "" {
		AbortWithError(c, missingFieldsError())
		return
	}

	result, err := s.provisioningsvc.Provision(c.Request.Context(), provisioningdomain.Request{
		VendorCode: req.VendorCode,
		VendorName: req.VendorName,
		Email:      req.Email,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProvisionResponse{
		Success:     true,
		VendorCode:  result.VendorCode,
		VendorName:  result.VendorName,
		Email:       result.Email,
		IsNewVendor: result.IsNewVendor,
		AuthCreated: result.AuthCreated,
		EmailSent:   result.EmailSent,
		UserID:      result.UserID,
		RedirectURL: result.RedirectURL,
		Message:     provisionMessage(result),
	})
}

func provisionMessage(result *provisioningdomain.Result) string {
	switch {
	case result.Err != nil:
		return "Vendor record saved but auth setup failed: " + result.Err.Error()
	case result.EmailSent:
		return fmt.Sprintf("Invitation email sent to %s", result.Email)
	default:
		return "Auth created but email failed - check email configuration"
	}
}
