package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FlotaHandler struct{ svc service.FlotaService }

func NewFlotaHandler(svc service.FlotaService) *FlotaHandler { return &FlotaHandler{svc: svc} }

// TiposVehiculo lists the accepted fleet categories for the frontend selects.
func (h *FlotaHandler) TiposVehiculo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": model.VehicleTypes})
}

func (h *FlotaHandler) CrearVehiculo(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.CrearVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateVehiculo(c.Request.Context(), hubID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FlotaHandler) ListarVehiculos(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	resp, err := h.svc.ListVehiculos(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar vehículos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlotaHandler) ActualizarVehiculo(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	vehiculoID, ok := pathUUID(c, "vehiculoId")
	if !ok {
		return
	}
	var req dto.ActualizarVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateVehiculo(c.Request.Context(), hubID, vehiculoID, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlotaHandler) EliminarVehiculo(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	vehiculoID, ok := pathUUID(c, "vehiculoId")
	if !ok {
		return
	}
	if err := h.svc.DeleteVehiculo(c.Request.Context(), hubID, vehiculoID); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehículo eliminado"})
}

func (h *FlotaHandler) CrearIncidencia(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.CrearIncidenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateIncidencia(c.Request.Context(), hubID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FlotaHandler) ListarIncidencias(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	if v := c.Query("vehicle_id"); v != "" {
		vehiculoID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Identificador de vehículo inválido"))
			return
		}
		resp, err := h.svc.ListIncidenciasByVehiculo(c.Request.Context(), vehiculoID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al listar incidencias"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	resp, err := h.svc.ListIncidencias(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar incidencias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlotaHandler) ActualizarIncidencia(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	incidenciaID, ok := pathUUID(c, "incidenciaId")
	if !ok {
		return
	}
	var req dto.ActualizarIncidenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateIncidencia(c.Request.Context(), hubID, incidenciaID, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlotaHandler) EliminarIncidencia(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	incidenciaID, ok := pathUUID(c, "incidenciaId")
	if !ok {
		return
	}
	if err := h.svc.DeleteIncidencia(c.Request.Context(), hubID, incidenciaID); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Incidencia eliminada"})
}
