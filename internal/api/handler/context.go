package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user id injected by the Auth middleware and performs
// a fast-fail check before any service call: an empty id means the middleware
// did not run or the token carried no identity, and no ledger operation may
// proceed without an owner to scope it to.
func ctxUserID(c echo.Context) (string, error) {
	uid, _ := c.Get("user_id").(string)
	if uid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return uid, nil
}
