// File: internal/model/job.go
package model

// Job 外部職缺搜尋結果的正規化視圖，不落地
type Job struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Link        *string `json:"link"`
	Description string  `json:"description"`
	Contact     *string `json:"contact"`
}
