package handler

import (
	"io"
	"net/http"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/middleware"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 10 MB cap on inline file uploads.
const maxUploadBytes = 10 << 20

type RegistrosHandler struct{ svc service.RegistroService }

func NewRegistrosHandler(svc service.RegistroService) *RegistrosHandler {
	return &RegistrosHandler{svc: svc}
}

func (h *RegistrosHandler) Crear(c *gin.Context) {
	var req dto.CrearRegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Create(c.Request.Context(), claims.UserID(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RegistrosHandler) Listar(c *gin.Context) {
	hubID := uuid.Nil
	if v := c.Query("hub_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Identificador de hub inválido"))
			return
		}
		hubID = id
	}
	resp, err := h.svc.List(c.Request.Context(), hubID, c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar registros"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RegistrosHandler) Obtener(c *gin.Context) {
	id, ok := pathUUID(c, "id")
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

func (h *RegistrosHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarRegistroRequest
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

func (h *RegistrosHandler) Eliminar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registro eliminado"})
}

// SubirArchivo attaches a multipart file to an existing record.
func (h *RegistrosHandler) SubirArchivo(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el fichero en el formulario"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("El fichero supera el tamaño máximo de 10 MB"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el fichero"))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el fichero"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	resp, err := h.svc.AttachFile(c.Request.Context(), id, fileHeader.Filename, contentType, data)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RegistrosHandler) Categorias(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Categories(c.Request.Context()))
}

func (h *RegistrosHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadísticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
