package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// bindMapping decodes the request body into a plain mapping for
// deserialization. Numbers are decoded as json.Number so decimal values
// survive without a float round-trip.
func bindMapping(c echo.Context) (any, error) {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return nil, echo.NewHTTPError(http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}

	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return data, nil
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}
	return uint(id), nil
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

func Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":    "Storefront REST API Service",
		"version": "1.0",
	})
}
