package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type HubsHandler struct{ svc service.HubService }

func NewHubsHandler(svc service.HubService) *HubsHandler { return &HubsHandler{svc: svc} }

func (h *HubsHandler) Crear(c *gin.Context) {
	var req dto.CrearHubRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *HubsHandler) Listar(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar hubs"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HubsHandler) Obtener(c *gin.Context) {
	id, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HubsHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.ActualizarHubRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HubsHandler) Eliminar(c *gin.Context) {
	id, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hub eliminado"})
}
