package entity

import (
	"time"
)

// OrderStatus 订单状态
const (
	OrderStatusPending   = "PENDING"   // 待确认
	OrderStatusConfirmed = "CONFIRMED" // 已确认
	OrderStatusScheduled = "SCHEDULED" // 排产中
	OrderStatusProducing = "PRODUCING" // 生产中
	OrderStatusQC        = "QC"        // 质检中
	OrderStatusShipped   = "SHIPPED"   // 已发货
	OrderStatusCompleted = "COMPLETED" // 已完成
	OrderStatusCancelled = "CANCELLED" // 已取消
)

// OrderStatusFlow 订单正向流转顺序，CANCELLED 为终止分支不在其中
var OrderStatusFlow = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusScheduled,
	OrderStatusProducing,
	OrderStatusQC,
	OrderStatusShipped,
	OrderStatusCompleted,
}

var orderStatusLabels = map[string]string{
	OrderStatusPending:   "待确认",
	OrderStatusConfirmed: "已确认",
	OrderStatusScheduled: "排产中",
	OrderStatusProducing: "生产中",
	OrderStatusQC:        "质检中",
	OrderStatusShipped:   "已发货",
	OrderStatusCompleted: "已完成",
	OrderStatusCancelled: "已取消",
}

// OrderStatusLabel 返回订单状态的中文显示名
func OrderStatusLabel(status string) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return status
}

// NextOrderStatus 返回正向流转中的下一个状态。
// 已是最后一个状态、CANCELLED 或未知状态时返回 ("", false)。
// 仅供界面按钮使用，Store 不做状态机校验。
func NextOrderStatus(status string) (string, bool) {
	for i, s := range OrderStatusFlow {
		if s == status && i < len(OrderStatusFlow)-1 {
			return OrderStatusFlow[i+1], true
		}
	}
	return "", false
}

// Order 订单
type Order struct {
	ID           string    `json:"id"`
	OrderNo      string    `json:"orderNo"`
	CustomerID   string    `json:"customerId"`
	ProductID    string    `json:"productId"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	UnitPrice    float64   `json:"unitPrice"`
	TotalAmount  float64   `json:"totalAmount"` // 由调用方给定，Store 不重算
	Status       string    `json:"status"`
	OrderDate    string    `json:"orderDate"`    // 业务日期，YYYY-MM-DD
	DeliveryDate string    `json:"deliveryDate"` // 交期，YYYY-MM-DD
	ShippedDate  string    `json:"shippedDate,omitempty"`
	Remark       string    `json:"remark,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
