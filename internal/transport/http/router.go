package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/olegsavin/storefront/internal/handlers"
)

type Deps struct {
	DB             *gorm.DB
	AccountHandler *handlers.AccountHandler
	ProductHandler *handlers.ProductHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", handlers.Health)
	e.GET("/", handlers.Index)

	accounts := e.Group("/accounts")
	accounts.POST("", d.AccountHandler.CreateAccount)
	accounts.GET("", d.AccountHandler.ListAccounts)
	accounts.GET("/:id", d.AccountHandler.GetAccount)
	accounts.PUT("/:id", d.AccountHandler.UpdateAccount)
	accounts.DELETE("/:id", d.AccountHandler.DeleteAccount)

	products := e.Group("/products")
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("", d.ProductHandler.ListProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)
}
