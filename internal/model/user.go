// File: internal/model/user.go
package model

// User 是唯一的持久化實體，對應 users 資料表
type User struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
