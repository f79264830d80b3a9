package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/service"
)

type APIKeyHandler struct {
	keyService service.APIKeyService
}

func NewAPIKeyHandler(keyService service.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{keyService: keyService}
}

func (h *APIKeyHandler) List(c *gin.Context) {
	keys, err := h.keyService.List(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToAPIKeyResponses(keys))
}

func (h *APIKeyHandler) Get(c *gin.Context) {
	keyID, ok := pathID(c, "id")
	if !ok {
		return
	}

	key, err := h.keyService.Get(c.Request.Context(), actor(c), keyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToAPIKeyResponse(key))
}

func (h *APIKeyHandler) Create(c *gin.Context) {
	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	key, err := h.keyService.Create(c.Request.Context(), actor(c), service.CreateAPIKeyInput{
		Provider: req.Provider,
		Key:      req.APIKey,
		Name:     req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.ToAPIKeyResponse(key))
}

func (h *APIKeyHandler) Update(c *gin.Context) {
	keyID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	key, err := h.keyService.Update(c.Request.Context(), actor(c), keyID, service.UpdateAPIKeyInput{
		Name:   req.Name,
		Key:    req.APIKey,
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToAPIKeyResponse(key))
}

func (h *APIKeyHandler) Delete(c *gin.Context) {
	keyID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.keyService.Delete(c.Request.Context(), actor(c), keyID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *APIKeyHandler) Verify(c *gin.Context) {
	var req dto.VerifyAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	in := service.VerifyAPIKeyInput{Provider: req.Provider, Key: req.APIKey}
	if req.ID != "" {
		keyID, ok := dto.ParseID(req.ID)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.Failure("invalid id", "INVALID_INPUT"))
			return
		}
		in.ID = &keyID
	}

	result, err := h.keyService.Verify(c.Request.Context(), actor(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.VerifyAPIKeyResponse{
		Valid:    result.Valid,
		Provider: result.Provider,
		Message:  result.Message,
	})
}
