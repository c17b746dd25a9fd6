// File: internal/handler/users/users.go
package users

import (
	"net/http"
	"strconv"

	"userboard/internal/store"
	"userboard/internal/view"

	"github.com/labstack/echo/v4"
)

// @Summary     List users
// @Description 回傳包含新增表單與所有使用者（每列附刪除按鈕）的 HTML 頁面
// @Tags        users
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Failure     500 {string} string "HTML error page"
// @Router      / [get]
func ListUsersHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := s.ListUsers(c.Request().Context())
		if err != nil {
			return storageError(c, err)
		}
		return view.Render(c, http.StatusOK, view.UsersPage(users))
	}
}

// @Summary     Add a user
// @Description 以表單中的 name 建立使用者（不做修剪與驗證，空字串亦可），完成後導回列表
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     html
// @Param       name formData string true "使用者姓名（可為空字串）"
// @Success     302 "Redirect to /"
// @Failure     400 {string} string "HTML error page"
// @Failure     500 {string} string "HTML error page"
// @Router      /add [post]
func AddUserHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		params, err := c.FormParams()
		if err != nil {
			return invalidInput(c, "invalid form data")
		}
		// 欄位必須存在，但值可以是空字串
		values, ok := params["name"]
		if !ok || len(values) == 0 {
			return invalidInput(c, "missing form field: name")
		}

		if _, err := s.InsertUser(c.Request().Context(), values[0]); err != nil {
			return storageError(c, err)
		}
		return c.Redirect(http.StatusFound, "/")
	}
}

// @Summary     Delete a user by ID
// @Description 刪除指定 ID 的使用者後導回列表；ID 不存在時視為成功。GET 與 POST 皆可
// @Tags        users
// @Produce     html
// @Param       id path int true "使用者 ID"
// @Success     302 "Redirect to /"
// @Failure     400 {string} string "HTML error page"
// @Failure     500 {string} string "HTML error page"
// @Router      /delete/{id} [get]
// @Router      /delete/{id} [post]
func DeleteUserHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return invalidInput(c, "invalid user ID")
		}
		if err := s.DeleteUser(c.Request().Context(), id); err != nil {
			return storageError(c, err)
		}
		return c.Redirect(http.StatusFound, "/")
	}
}

func invalidInput(c echo.Context, msg string) error {
	return view.Render(c, http.StatusBadRequest, view.ErrorPage(http.StatusBadRequest, msg))
}

// storageError 只記錄完整錯誤，頁面僅顯示通用訊息
func storageError(c echo.Context, err error) error {
	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return view.Render(c, http.StatusInternalServerError,
		view.ErrorPage(http.StatusInternalServerError, "the user store is currently unavailable"))
}
