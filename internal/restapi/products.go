package restapi

import (
	"errors"
	"net/http"

	"github.com/itlabra/xmlcatalog/internal/app"
	"github.com/itlabra/xmlcatalog/internal/catalog"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Register attaches the catalog routes to the echo instance.
func Register(e *echo.Echo, appCtx app.AppContext) {
	api := &ProductAPI{appCtx: appCtx}
	e.GET("/products", api.listProducts)
}

// ProductAPI serves the read-only product catalog.
type ProductAPI struct {
	appCtx app.AppContext
}

// listProducts returns every catalog row as a flat JSON array in
// insertion order. An empty table yields [] with status 200. A row
// whose Details document cannot be decomposed fails the whole request
// with 500; partial listings are never returned.
func (h *ProductAPI) listProducts(c echo.Context) error {
	reader := catalog.NewService(h.appCtx.DB())
	items, err := reader.ListProducts(c.Request().Context())
	if err != nil {
		var perr *catalog.ParseError
		if errors.As(err, &perr) {
			zap.L().Error("product details parse failed",
				zap.Int64("product_id", perr.ProductID),
				zap.Error(err))
			return fail(c, http.StatusInternalServerError, "DETAILS_PARSE_ERROR",
				"Failed to decode product details", nil)
		}
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Failed to query products", err.Error())
	}
	return ok(c, items)
}
