package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type FestivosHandler struct{ svc service.FestivoService }

func NewFestivosHandler(svc service.FestivoService) *FestivosHandler {
	return &FestivosHandler{svc: svc}
}

func (h *FestivosHandler) Listar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2100 {
			c.JSON(http.StatusBadRequest, apierror.New("Año inválido"))
			return
		}
		year = n
	}
	resp, err := h.svc.ListYear(c.Request.Context(), hubID, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar festivos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FestivosHandler) Crear(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	var req dto.CrearFestivoRequest
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

func (h *FestivosHandler) Eliminar(c *gin.Context) {
	hubID, ok := pathUUID(c, "hubId")
	if !ok {
		return
	}
	festivoID, ok := pathUUID(c, "festivoId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), hubID, festivoID); err != nil {
		if errors.Is(err, service.ErrFestivoPreset) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Festivo eliminado"})
}
