package entity

import (
	"time"
)

// QuoteStatus 报价状态
const (
	QuoteStatusDraft    = "DRAFT"    // 草稿
	QuoteStatusPending  = "PENDING"  // 待审批
	QuoteStatusApproved = "APPROVED" // 已批准
	QuoteStatusRejected = "REJECTED" // 已驳回
	QuoteStatusExpired  = "EXPIRED"  // 已过期
)

var quoteStatusLabels = map[string]string{
	QuoteStatusDraft:    "草稿",
	QuoteStatusPending:  "待审批",
	QuoteStatusApproved: "已批准",
	QuoteStatusRejected: "已驳回",
	QuoteStatusExpired:  "已过期",
}

// QuoteStatusLabel 返回报价状态的中文显示名
func QuoteStatusLabel(status string) string {
	if label, ok := quoteStatusLabels[status]; ok {
		return label
	}
	return status
}

// Quote 报价单。同一客户+产品的历史报价按版本号递增，
// 版本号在创建时计算，后续不会重新编号。
type Quote struct {
	ID          string    `json:"id"`
	QuoteNo     string    `json:"quoteNo"`
	CustomerID  string    `json:"customerId"`
	ProductID   string    `json:"productId"`
	UnitPrice   float64   `json:"unitPrice"`
	MinOrderQty float64   `json:"minOrderQty"`
	ValidUntil  string    `json:"validUntil"` // 有效期，YYYY-MM-DD
	Version     int       `json:"version"`
	Status      string    `json:"status"`
	Remark      string    `json:"remark,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}
