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

type AsistenciasHandler struct{ svc service.AsistenciaService }

func NewAsistenciasHandler(svc service.AsistenciaService) *AsistenciasHandler {
	return &AsistenciasHandler{svc: svc}
}

func (h *AsistenciasHandler) CrearEmpleado(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.CrearEmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateEmpleado(c.Request.Context(), hubID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AsistenciasHandler) ListarEmpleados(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	resp, err := h.svc.ListEmpleados(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar empleados"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AsistenciasHandler) EliminarEmpleado(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	empleadoID, ok := pathUUID(c, "empleadoId")
	if !ok {
		return
	}
	if err := h.svc.DeleteEmpleado(c.Request.Context(), hubID, empleadoID); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Empleado eliminado"})
}

func (h *AsistenciasHandler) Grid(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.Grid(c.Request.Context(), hubID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar asistencias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AsistenciasHandler) Guardar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.GuardarAsistenciasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Guardar(c.Request.Context(), hubID, req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asistencias guardadas"})
}

func (h *AsistenciasHandler) Resumen(c *gin.Context) {
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

// ExportarXLSX streams the month's attendance workbook.
func (h *AsistenciasHandler) ExportarXLSX(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}
	grid, err := h.svc.Grid(c.Request.Context(), hubID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar asistencias"))
		return
	}
	resumen, err := h.svc.Resumen(c.Request.Context(), hubID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el resumen"))
		return
	}

	f, err := export.AsistenciasXLSX(year, month, grid, resumen.Summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el fichero"))
		return
	}

	fileName := fmt.Sprintf("asistencias_%s_%d.xlsx", calendar.Months[month], year)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	if err := f.Write(c.Writer); err != nil {
		c.Error(err)
	}
}
