package store

import (
	"time"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
)

// CreateOrderRequest 新建订单的调用方字段。
// id、orderNo、createdAt、updatedAt 由 Store 生成；
// totalAmount 照单全收，Store 不重算。
type CreateOrderRequest struct {
	CustomerID   string  `json:"customerId"`
	ProductID    string  `json:"productId"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalAmount  float64 `json:"totalAmount"`
	Status       string  `json:"status"`
	OrderDate    string  `json:"orderDate"`
	DeliveryDate string  `json:"deliveryDate"`
	Remark       string  `json:"remark"`
}

// AddOrder 新建订单
func (s *Store) AddOrder(req CreateOrderRequest) entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	o := entity.Order{
		ID:           GenerateID(),
		OrderNo:      GenerateOrderNo(),
		CustomerID:   req.CustomerID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		UnitPrice:    req.UnitPrice,
		TotalAmount:  req.TotalAmount,
		Status:       req.Status,
		OrderDate:    req.OrderDate,
		DeliveryDate: req.DeliveryDate,
		Remark:       req.Remark,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.orders = append(s.orders, o)
	s.persist()
	return o
}

// UpdateOrderRequest 订单的部分更新，nil 字段保持原值
type UpdateOrderRequest struct {
	CustomerID   *string  `json:"customerId,omitempty"`
	ProductID    *string  `json:"productId,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
	UnitPrice    *float64 `json:"unitPrice,omitempty"`
	TotalAmount  *float64 `json:"totalAmount,omitempty"`
	Status       *string  `json:"status,omitempty"`
	OrderDate    *string  `json:"orderDate,omitempty"`
	DeliveryDate *string  `json:"deliveryDate,omitempty"`
	ShippedDate  *string  `json:"shippedDate,omitempty"`
	Remark       *string  `json:"remark,omitempty"`
}

// UpdateOrder 浅合并更新订单。无论改了哪些字段，updatedAt 都会刷新。
// id 不存在时静默不变。
func (s *Store) UpdateOrder(id string, req UpdateOrderRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		o := &s.orders[i]
		if req.CustomerID != nil {
			o.CustomerID = *req.CustomerID
		}
		if req.ProductID != nil {
			o.ProductID = *req.ProductID
		}
		if req.Quantity != nil {
			o.Quantity = *req.Quantity
		}
		if req.Unit != nil {
			o.Unit = *req.Unit
		}
		if req.UnitPrice != nil {
			o.UnitPrice = *req.UnitPrice
		}
		if req.TotalAmount != nil {
			o.TotalAmount = *req.TotalAmount
		}
		if req.Status != nil {
			o.Status = *req.Status
		}
		if req.OrderDate != nil {
			o.OrderDate = *req.OrderDate
		}
		if req.DeliveryDate != nil {
			o.DeliveryDate = *req.DeliveryDate
		}
		if req.ShippedDate != nil {
			o.ShippedDate = *req.ShippedDate
		}
		if req.Remark != nil {
			o.Remark = *req.Remark
		}
		o.UpdatedAt = time.Now()
		s.persist()
		return
	}
}

// UpdateOrderStatus 只改状态的快捷入口，同样刷新 updatedAt，
// 新状态与旧状态相同时也不例外。
func (s *Store) UpdateOrderStatus(id, status string) {
	s.UpdateOrder(id, UpdateOrderRequest{Status: &status})
}

// DeleteOrder 删除订单。不清理其质检记录。id 不存在时静默不变。
func (s *Store) DeleteOrder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persist()
			return
		}
	}
}

// GetOrderByID 按 id 查订单
func (s *Store) GetOrderByID(id string) (entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Order{}, false
}

// GetOrdersByCustomerID 查客户的全部订单，保持表内原有顺序，
// 无匹配时返回空切片
func (s *Store) GetOrdersByCustomerID(customerID string) []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]entity.Order, 0)
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	return orders
}
