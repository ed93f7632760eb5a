package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/calendar"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/export"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type KilosLitrosHandler struct {
	svc   service.KilosLitrosService
	rutas service.LiquidacionService
}

func NewKilosLitrosHandler(svc service.KilosLitrosService, rutas service.LiquidacionService) *KilosLitrosHandler {
	return &KilosLitrosHandler{svc: svc, rutas: rutas}
}

func (h *KilosLitrosHandler) Crear(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.CrearKilosLitrosRequest
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

func (h *KilosLitrosHandler) Listar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), hubID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar registros"))
		return
	}

	// Optional narrowing within the month.
	if rutaID := c.Query("route_id"); rutaID != "" {
		resp = filterKilosLitros(resp, func(e dto.KilosLitrosResponse) bool { return e.RutaID == rutaID })
	}
	if d := c.Query("day"); d != "" {
		day, err := strconv.Atoi(d)
		if err != nil || day < 1 || day > calendar.DaysInMonth(year, month) {
			c.JSON(http.StatusBadRequest, apierror.New("Día inválido"))
			return
		}
		fecha := calendar.DateString(year, month, day)
		resp = filterKilosLitros(resp, func(e dto.KilosLitrosResponse) bool { return e.Fecha == fecha })
	}
	c.JSON(http.StatusOK, resp)
}

func filterKilosLitros(entries []dto.KilosLitrosResponse, keep func(dto.KilosLitrosResponse) bool) []dto.KilosLitrosResponse {
	out := entries[:0]
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func (h *KilosLitrosHandler) Eliminar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), hubID, id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registro eliminado"})
}

func (h *KilosLitrosHandler) Resumen(c *gin.Context) {
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

// ExportarCSV streams the month's entries in the plain CSV layout.
func (h *KilosLitrosHandler) ExportarCSV(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}
	entries, err := h.svc.List(c.Request.Context(), hubID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar registros"))
		return
	}
	rutas, err := h.rutas.ListRutas(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar rutas"))
		return
	}
	rutaNames := make(map[string]string, len(rutas))
	for _, r := range rutas {
		rutaNames[r.ID] = r.Name
	}

	fileName := fmt.Sprintf("kilos_litros_%s_%d.csv", calendar.Months[month], year)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.KilosLitrosCSV(entries, rutaNames)))
}
