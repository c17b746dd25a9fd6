// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"userboard/internal/cache"
	"userboard/internal/handler"
	"userboard/internal/handler/users"
	"userboard/internal/store"
)

// Setup 註冊所有路由並注入 store 與快取（cch 可為 nil）
func Setup(e *echo.Echo, s store.UserStore, cch cache.Cache) {
	e.HTTPErrorHandler = handler.ErrorHandler

	// 健康檢查
	e.GET("/ping", handler.PingHandler(s, cch))

	// 使用者列表、新增、刪除
	e.GET("/", users.ListUsersHandler(s))
	e.POST("/add", users.AddUserHandler(s))
	// GET 保留連結式刪除；頁面本身使用 POST 表單
	e.GET("/delete/:id", users.DeleteUserHandler(s))
	e.POST("/delete/:id", users.DeleteUserHandler(s))
}
