package entity

import (
	"time"
)

// CustomerType 客户类型
const (
	CustomerTypeBrand    = "BRAND"    // 品牌商
	CustomerTypeRetailer = "RETAILER" // 零售商
	CustomerTypeTrader   = "TRADER"   // 贸易商
)

// CustomerStatus 客户合作状态
const (
	CustomerStatusPotential   = "POTENTIAL"   // 潜在
	CustomerStatusNegotiating = "NEGOTIATING" // 洽谈中
	CustomerStatusActive      = "ACTIVE"      // 合作中
	CustomerStatusPaused      = "PAUSED"      // 暂停
	CustomerStatusLost        = "LOST"        // 流失
)

var customerStatusLabels = map[string]string{
	CustomerStatusPotential:   "潜在",
	CustomerStatusNegotiating: "洽谈中",
	CustomerStatusActive:      "合作中",
	CustomerStatusPaused:      "暂停",
	CustomerStatusLost:        "流失",
}

var customerTypeLabels = map[string]string{
	CustomerTypeBrand:    "品牌商",
	CustomerTypeRetailer: "零售商",
	CustomerTypeTrader:   "贸易商",
}

// CustomerStatusLabel 返回客户状态的中文显示名
func CustomerStatusLabel(status string) string {
	if label, ok := customerStatusLabels[status]; ok {
		return label
	}
	return status
}

// CustomerTypeLabel 返回客户类型的中文显示名
func CustomerTypeLabel(t string) string {
	if label, ok := customerTypeLabels[t]; ok {
		return label
	}
	return t
}

// Contact 客户联系人，内嵌于客户记录，不单独成表
type Contact struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Position   string `json:"position,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Wechat     string `json:"wechat,omitempty"`
	Email      string `json:"email,omitempty"`
	IsPrimary  bool   `json:"isPrimary"`
}

// Customer 客户
type Customer struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"companyName"`
	ShortName    string    `json:"shortName"`
	CustomerType string    `json:"customerType"`
	Status       string    `json:"status"`
	Region       string    `json:"region"`
	Address      string    `json:"address"`
	OwnerID      string    `json:"ownerId"`
	Remark       string    `json:"remark,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Contacts     []Contact `json:"contacts"`
}
