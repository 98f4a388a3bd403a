package handlers

import (
	"strconv"
	"strings"

	"github.com/amikaross/rails-engine/internal/common"

	"github.com/labstack/echo/v4"
)

const missingParamMessage = "param is missing or the value is empty: "

// pathID reads an integer path parameter; anything else cannot name a record
func pathID(c echo.Context, param, model string) (int64, error) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, common.NewNotFoundError(model, raw)
	}
	return id, nil
}

// bindBody decodes the request body, reporting malformed input as an
// attribute error
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return common.NewMissingAttributesError("Request body is malformed")
	}
	return nil
}
