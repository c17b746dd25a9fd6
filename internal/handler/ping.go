// File: internal/handler/ping.go
package handler

import (
	"context"
	"net/http"
	"time"

	"userboard/internal/cache"
	"userboard/internal/dto"

	"github.com/labstack/echo/v4"
)

// Pinger 是能回報後端連線狀態的元件，store.UserStore 皆符合
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

const pingKey = "ping"

// PingHandler 健康檢查
// cch 為 nil 時代表未啟用快取，僅檢查資料庫
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與（若有啟用）Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db Pinger, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		if cch != nil {
			if err := cch.Set(ctx, pingKey, "pong", time.Second).Err(); err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
