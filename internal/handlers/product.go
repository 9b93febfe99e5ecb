package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/olegsavin/storefront/internal/events"
	"github.com/olegsavin/storefront/internal/logging"
	"github.com/olegsavin/storefront/internal/models"
	"github.com/olegsavin/storefront/internal/repo"
)

type ProductHandler struct {
	Repo     *repo.ProductRepo
	Producer *events.Producer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.ProductTopic, fmt.Sprint(event["productID"]), event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	data, err := bindMapping(c)
	if err != nil {
		l.Error("create_product_failed", "reason", "invalid body", "error", err)
		return err
	}

	product := &models.Product{}
	if _, err := product.Deserialize(data); err != nil {
		var verr *models.DataValidationError
		if errors.As(err, &verr) {
			l.Error("create_product_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, verr.Message)
		}
		return err
	}

	if err := h.Repo.Create(ctx, product); err != nil {
		l.Error("create_product_failed", "status", 500, "reason", "cannot add product to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product to db")
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	l.Info("create_product_success", "id", product.ID)
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/products/%d", product.ID))
	return c.JSON(http.StatusCreated, product.Serialize())
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := pathID(c)
	if err != nil {
		l.Error("get_product_failed", "status", 400, "reason", "id is not an integer")
		return err
	}

	product, err := h.Repo.Find(ctx, id)
	if err != nil {
		l.Error("get_product_failed", "status", 500, "reason", "cannot read product from db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read product from db")
	}
	if product == nil {
		l.Warn("get_product_failed", "status", 404, "id", id)
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with id [%d] was not found", id))
	}

	return c.JSON(http.StatusOK, product.Serialize())
}

// ListProducts returns all products, or a filtered subset when one of the
// name, price, available or category query parameters is present. An
// empty available or category value selects the default bucket
// (available=true, category=UNKNOWN).
func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list_products")

	var (
		products []models.Product
		err      error
	)
	params := c.QueryParams()
	switch {
	case params.Get("name") != "":
		products, err = h.Repo.FindByName(ctx, params.Get("name"))
	case params.Get("price") != "":
		products, err = h.Repo.FindByPrice(ctx, params.Get("price"))
	case params.Has("available"):
		available := true
		if v := params.Get("available"); v != "" {
			available, err = strconv.ParseBool(v)
			if err != nil {
				l.Error("list_products_failed", "status", 400, "reason", "available is not a boolean")
				return echo.NewHTTPError(http.StatusBadRequest, "available must be a boolean")
			}
		}
		products, err = h.Repo.FindByAvailability(ctx, available)
	case params.Has("category"):
		category := models.CategoryUnknown
		if v := params.Get("category"); v != "" {
			category, err = models.ParseCategory(v)
			if err != nil {
				l.Error("list_products_failed", "status", 400, "reason", "unknown category", "error", err)
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
		}
		products, err = h.Repo.FindByCategory(ctx, category)
	default:
		products, err = h.Repo.All(ctx)
	}
	if err != nil {
		var verr *models.DataValidationError
		if errors.As(err, &verr) {
			l.Error("list_products_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, verr.Message)
		}
		l.Error("list_products_failed", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	results := make([]map[string]any, 0, len(products))
	for i := range products {
		results = append(results, products[i].Serialize())
	}

	l.Info("list_products_success", "count", len(results))
	return c.JSON(http.StatusOK, results)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := pathID(c)
	if err != nil {
		l.Error("update_product_failed", "status", 400, "reason", "id is not an integer")
		return err
	}

	data, err := bindMapping(c)
	if err != nil {
		l.Error("update_product_failed", "reason", "invalid body", "error", err)
		return err
	}

	product, err := h.Repo.Find(ctx, id)
	if err != nil {
		l.Error("update_product_failed", "status", 500, "reason", "cannot read product from db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read product from db")
	}
	if product == nil {
		l.Warn("update_product_failed", "status", 404, "id", id)
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with id [%d] was not found", id))
	}

	if _, err := product.Deserialize(data); err != nil {
		var verr *models.DataValidationError
		if errors.As(err, &verr) {
			l.Error("update_product_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, verr.Message)
		}
		return err
	}

	if err := h.Repo.Update(ctx, product); err != nil {
		l.Error("update_product_failed", "status", 500, "reason", "cannot update product in db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product in db")
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})

	l.Info("update_product_success", "id", product.ID)
	return c.JSON(http.StatusOK, product.Serialize())
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := pathID(c)
	if err != nil {
		l.Error("delete_product_failed", "status", 400, "reason", "id is not an integer")
		return err
	}

	product, err := h.Repo.Find(ctx, id)
	if err != nil {
		l.Error("delete_product_failed", "status", 500, "reason", "cannot read product from db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read product from db")
	}
	if product != nil {
		if err := h.Repo.Delete(ctx, product); err != nil {
			l.Error("delete_product_failed", "status", 500, "reason", "cannot delete product from db", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product from db")
		}
		h.publish(c, map[string]any{
			"type":      "product_deleted",
			"productID": id,
		})
	}

	l.Info("delete_product_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
