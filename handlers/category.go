package handlers

import (
	"net/http"

	"expense-api/models"
	"expense-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

// List returns all categories ordered by name
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, categories, len(categories))
}

// Create adds a category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	category, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, category)
}

// Get returns a category by ID
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, category)
}

// Update applies a partial patch to a category
func (h *CategoryHandler) Update(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	category, err := h.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, category)
}

// Delete removes a category unless transactions still reference it
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}
