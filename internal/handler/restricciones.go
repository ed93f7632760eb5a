package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type RestriccionesHandler struct{ svc service.RestriccionService }

func NewRestriccionesHandler(svc service.RestriccionService) *RestriccionesHandler {
	return &RestriccionesHandler{svc: svc}
}

func (h *RestriccionesHandler) Crear(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.CrearRestriccionRequest
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

func (h *RestriccionesHandler) Listar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar restricciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RestriccionesHandler) Actualizar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	restriccionID, ok := pathUUID(c, "restriccionId")
	if !ok {
		return
	}
	var req dto.ActualizarRestriccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), hubID, restriccionID, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RestriccionesHandler) Eliminar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	restriccionID, ok := pathUUID(c, "restriccionId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), hubID, restriccionID); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restricción eliminada"})
}
