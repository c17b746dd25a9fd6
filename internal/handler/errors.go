// File: internal/handler/errors.go
package handler

import (
	"errors"
	"net/http"

	"userboard/internal/view"

	"github.com/labstack/echo/v4"
)

// ErrorHandler 取代 echo 預設的 JSON 錯誤回應，改以 HTML 錯誤頁呈現
// 主要處理路由層的 404 / 405 與 middleware 回傳的錯誤
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = view.Render(c, code, view.ErrorPage(code, msg))
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
