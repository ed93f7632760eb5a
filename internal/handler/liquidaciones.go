package handler

import (
	"fmt"
	"net/http"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/calendar"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/export"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type LiquidacionesHandler struct {
	svc  service.LiquidacionService
	hubs service.HubService
}

func NewLiquidacionesHandler(svc service.LiquidacionService, hubs service.HubService) *LiquidacionesHandler {
	return &LiquidacionesHandler{svc: svc, hubs: hubs}
}

func (h *LiquidacionesHandler) CrearRuta(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.CrearRutaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateRuta(c.Request.Context(), hubID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LiquidacionesHandler) ListarRutas(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	resp, err := h.svc.ListRutas(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar rutas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LiquidacionesHandler) EliminarRuta(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	rutaID, ok := pathUUID(c, "rutaId")
	if !ok {
		return
	}
	if err := h.svc.DeleteRuta(c.Request.Context(), hubID, rutaID); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ruta eliminada"})
}

func (h *LiquidacionesHandler) ListarPorRuta(c *gin.Context) {
	rutaID, ok := pathUUID(c, "rutaId")
	if !ok {
		return
	}
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListByRuta(c.Request.Context(), rutaID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar liquidaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LiquidacionesHandler) Guardar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.GuardarLiquidacionesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Guardar(c.Request.Context(), hubID, req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Liquidaciones guardadas"})
}

func (h *LiquidacionesHandler) Resumen(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), hubID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el resumen"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportarPDF streams the month's reconciliation report.
func (h *LiquidacionesHandler) ExportarPDF(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}
	hub, err := h.hubs.Get(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	resumen, err := h.svc.Resumen(c.Request.Context(), hubID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el resumen"))
		return
	}
	data, err := export.LiquidacionesPDF(hub.Name, year, month, resumen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el informe"))
		return
	}

	fileName := fmt.Sprintf("liquidaciones_%s_%d.pdf", calendar.Months[month], year)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
