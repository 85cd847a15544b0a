package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moneypad/expense-tracker/internal/core/domain"
	"github.com/moneypad/expense-tracker/internal/core/ports"
)

// TransactionHandler handles HTTP requests for ledger operations. Every
// route requires the Auth middleware; the owner id always comes from the
// verified token, never from the request body.
type TransactionHandler struct {
	service ports.LedgerService
}

func NewTransactionHandler(service ports.LedgerService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// Add handles POST /api/transactions.
//
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addTransactionRequest  true  "Transaction to record"
// @Success      201   {object}  transactionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /transactions [post]
func (h *TransactionHandler) Add(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tx, err := h.service.Add(c.Request().Context(), uid, ports.AddTransactionInput{
		Desc:   req.Desc,
		Amount: req.Amount,
		Type:   domain.Kind(req.Type),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(*tx))
}

// List handles GET /api/transactions.
//
// @Summary      List the caller's transactions, newest first
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   transactionResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	txs, err := h.service.List(c.Request().Context(), uid)
	if err != nil {
		return err
	}

	resp := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, toTransactionResponse(tx))
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/transactions/:id. It reports success whether or
// not the id named a record in the caller's ledger: deleting a missing or
// foreign transaction is a no-op by contract, so repeated deletes of the same
// id all succeed.
//
// @Summary      Delete a transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transaction id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Transaction deleted"})
}

// Reset handles DELETE /api/transactions — removes the caller's whole ledger.
//
// @Summary      Reset the caller's ledger
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  resetResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /transactions [delete]
func (h *TransactionHandler) Reset(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Reset(c.Request().Context(), uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resetResponse{Message: "Ledger reset", Deleted: deleted})
}

// Summary handles GET /api/transactions/summary.
//
// @Summary      Income, expense, and balance totals for the caller
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  summaryResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /transactions/summary [get]
func (h *TransactionHandler) Summary(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	s, err := h.service.Summary(c.Request().Context(), uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summaryResponse{Income: s.Income, Expense: s.Expense, Balance: s.Balance})
}
