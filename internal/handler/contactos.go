package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactosHandler struct{ svc service.ContactoService }

func NewContactosHandler(svc service.ContactoService) *ContactosHandler {
	return &ContactosHandler{svc: svc}
}

func (h *ContactosHandler) Crear(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.CrearContactoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), hubID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ContactosHandler) Listar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar contactos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactosHandler) Actualizar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	contactoID, ok := pathUUID(c, "contactoId")
	if !ok {
		return
	}
	var req dto.ActualizarContactoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), hubID, contactoID, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactosHandler) Eliminar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	contactoID, ok := pathUUID(c, "contactoId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), hubID, contactoID); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contacto eliminado"})
}
