package handlers

import (
	"net/http"

	"expense-api/models"
	"expense-api/services"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	Service *services.TransactionService
}

// List returns all transactions, newest first
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, transactions, len(transactions))
}

// Create adds a transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	txn, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, txn)
}

// Get returns a transaction by ID
func (h *TransactionHandler) Get(c *gin.Context) {
	txn, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, txn)
}

// Update applies a partial patch to a transaction
func (h *TransactionHandler) Update(c *gin.Context) {
	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	txn, err := h.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, txn)
}

// Delete removes a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}
