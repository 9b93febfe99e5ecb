package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/olegsavin/storefront/internal/events"
	"github.com/olegsavin/storefront/internal/logging"
	"github.com/olegsavin/storefront/internal/models"
	"github.com/olegsavin/storefront/internal/repo"
)

type AccountHandler struct {
	Repo     *repo.AccountRepo
	Producer *events.Producer
}

func (h *AccountHandler) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.AccountTopic, fmt.Sprint(event["accountID"]), event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}

func (h *AccountHandler) CreateAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.create_account")

	data, err := bindMapping(c)
	if err != nil {
		l.Error("create_account_failed", "reason", "invalid body", "error", err)
		return err
	}

	account := &models.Account{}
	if _, err := account.Deserialize(data); err != nil {
		var verr *models.DataValidationError
		if errors.As(err, &verr) {
			l.Error("create_account_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, verr.Message)
		}
		return err
	}

	if err := h.Repo.Create(ctx, account); err != nil {
		l.Error("create_account_failed", "status", 500, "reason", "cannot add account to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add account to db")
	}

	h.publish(c, map[string]any{
		"type":      "account_created",
		"accountID": account.ID,
		"name":      account.Name,
	})

	l.Info("create_account_success", "id", account.ID)
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/accounts/%d", account.ID))
	return c.JSON(http.StatusCreated, account.Serialize())
}

func (h *AccountHandler) GetAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.get_account")

	id, err := pathID(c)
	if err != nil {
		l.Error("get_account_failed", "status", 400, "reason", "id is not an integer")
		return err
	}

	account, err := h.Repo.Find(ctx, id)
	if err != nil {
		l.Error("get_account_failed", "status", 500, "reason", "cannot read account from db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read account from db")
	}
	if account == nil {
		l.Warn("get_account_failed", "status", 404, "id", id)
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("account with id [%d] was not found", id))
	}

	return c.JSON(http.StatusOK, account.Serialize())
}

func (h *AccountHandler) ListAccounts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.list_accounts")

	var (
		accounts []models.Account
		err      error
	)
	if name := c.QueryParam("name"); name != "" {
		accounts, err = h.Repo.FindByName(ctx, name)
	} else {
		accounts, err = h.Repo.All(ctx)
	}
	if err != nil {
		l.Error("list_accounts_failed", "status", 500, "reason", "cannot list accounts", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list accounts")
	}

	results := make([]map[string]any, 0, len(accounts))
	for i := range accounts {
		results = append(results, accounts[i].Serialize())
	}

	l.Info("list_accounts_success", "count", len(results))
	return c.JSON(http.StatusOK, results)
}

func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.update_account")

	id, err := pathID(c)
	if err != nil {
		l.Error("update_account_failed", "status", 400, "reason", "id is not an integer")
		return err
	}

	data, err := bindMapping(c)
	if err != nil {
		l.Error("update_account_failed", "reason", "invalid body", "error", err)
		return err
	}

	account, err := h.Repo.Find(ctx, id)
	if err != nil {
		l.Error("update_account_failed", "status", 500, "reason", "cannot read account from db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read account from db")
	}
	if account == nil {
		l.Warn("update_account_failed", "status", 404, "id", id)
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("account with id [%d] was not found", id))
	}

	if _, err := account.Deserialize(data); err != nil {
		var verr *models.DataValidationError
		if errors.As(err, &verr) {
			l.Error("update_account_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, verr.Message)
		}
		return err
	}

	if err := h.Repo.Update(ctx, account); err != nil {
		l.Error("update_account_failed", "status", 500, "reason", "cannot update account in db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update account in db")
	}

	h.publish(c, map[string]any{
		"type":      "account_updated",
		"accountID": account.ID,
		"name":      account.Name,
	})

	l.Info("update_account_success", "id", account.ID)
	return c.JSON(http.StatusOK, account.Serialize())
}

func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.delete_account")

	id, err := pathID(c)
	if err != nil {
		l.Error("delete_account_failed", "status", 400, "reason", "id is not an integer")
		return err
	}

	account, err := h.Repo.Find(ctx, id)
	if err != nil {
		l.Error("delete_account_failed", "status", 500, "reason", "cannot read account from db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read account from db")
	}
	if account != nil {
		if err := h.Repo.Delete(ctx, account); err != nil {
			l.Error("delete_account_failed", "status", 500, "reason", "cannot delete account from db", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete account from db")
		}
		h.publish(c, map[string]any{
			"type":      "account_deleted",
			"accountID": id,
		})
	}

	l.Info("delete_account_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
