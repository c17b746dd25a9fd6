// Package view 以 templ 元件產生伺服器端 HTML 頁面
//
// *.templ 為原始檔，*_templ.go 由 `templ generate` 產生，請勿手動修改
package view

import (
	"bytes"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render 將元件完整寫成 HTML 回應；元件失敗時不寫出任何內容
func Render(c echo.Context, status int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}
