package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type VendorResponse struct {
	VendorCode string `json:"vendor_code"`
	VendorName string `json:"vendor_name"`
	Email      string `json:"email"`
}

func (s *Server) GetVendor(c *gin.Context) {
	found, err := s.vendorsvc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, VendorResponse{
		VendorCode: found.VendorCode,
		VendorName: found.VendorName,
		Email:      found.Email,
	})
}
