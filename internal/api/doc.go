// Package api 定義對外的 HTTP 與 WebSocket 入口。
//
// REST 部分負責辯論的建立、列表，以及消息的提交和歷史查詢；
// /ws/debates/:id 則把連接升級成 WebSocket 後交給連接管理器，
// 之後這條連接只接收該場辯論的廣播。handlers 子包負責把請求
// 轉換為服務調用，並把結果或錯誤轉回 JSON 響應。
package api
