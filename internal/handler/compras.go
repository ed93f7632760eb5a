package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

func (h *ComprasHandler) Crear(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.CrearCompraRequest
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

func (h *ComprasHandler) Listar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComprasHandler) Actualizar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	compraID, ok := pathUUID(c, "compraId")
	if !ok {
		return
	}
	var req dto.ActualizarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), hubID, compraID, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComprasHandler) Eliminar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	compraID, ok := pathUUID(c, "compraId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), hubID, compraID); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Compra eliminada"})
}
