package handler

import (
	"printshop/internal/delivery/api/response"
	"printshop/internal/delivery/api/validator"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request body and runs the struct validation tags.
// The returned error is already rendered; handlers just return it.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, validator.Describe(err))
	}

	return true, nil
}

func pathID(c echo.Context, name string) (int64, bool) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func pageQuery(c echo.Context) (limit, offset int, err error) {
	err = echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()

	return limit, offset, err
}

func currentActor(c echo.Context) (entity.Actor, bool) {
	return deliverycontext.GetActor(c)
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
}
