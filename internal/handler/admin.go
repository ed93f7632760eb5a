package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/middleware"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the user management endpoints reserved for admins.
type AdminHandler struct{ svc service.AuthService }

func NewAdminHandler(svc service.AuthService) *AdminHandler { return &AdminHandler{svc: svc} }

func (h *AdminHandler) ListUsers(c *gin.Context) {
	resp, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListPending(c *gin.Context) {
	resp, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios pendientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Approve(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Approve(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario aprobado"})
}

func (h *AdminHandler) Reject(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reject(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario rechazado"})
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if claims.UserID() == id {
		c.JSON(http.StatusBadRequest, apierror.New("No puedes eliminar tu propia cuenta"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado"})
}
