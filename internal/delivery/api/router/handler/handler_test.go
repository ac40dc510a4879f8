package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"printshop/internal/delivery/api/response"
	"printshop/internal/delivery/api/validator"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error response.ErrorInfo `json:"error"`
}

func newTestContext(method, target, body string, actor *entity.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		deliverycontext.SetActor(c, *actor)
	}

	return c, rec
}

func withID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}
