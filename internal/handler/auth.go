package handler

import (
	"errors"
	"net/http"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/middleware"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCuentaPendiente) {
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Me(c.Request.Context(), claims.UserID())
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
