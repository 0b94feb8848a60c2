package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logindomain "github.com/julinemart/vendorid/internal/login/domain"
)

type LoginRequest struct {
	VendorCode string `json:"vendor_code"`
	Password   string `json:"password"`
}

func (s *Server) VendorLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.loginsvc.Login(c.Request.Context(), logindomain.Request{
		VendorCode: req.VendorCode,
		Password:   req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
