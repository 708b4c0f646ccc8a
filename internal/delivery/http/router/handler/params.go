package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// queryUUID parses a UUID query parameter.
func queryUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.QueryParam(name))
}

// uuidFromForm parses a UUID multipart form value.
func uuidFromForm(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.FormValue(name))
}

// pagination reads limit/offset query parameters. Missing or malformed
// values fall back to zero and let the usecase apply its defaults.
func pagination(c echo.Context) (limit, offset int) {
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		offset = v
	}

	return limit, offset
}
