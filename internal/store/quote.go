package store

import (
	"time"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
)

// CreateQuoteRequest 新建报价的调用方字段。
// id、quoteNo、createdAt、version 由 Store 生成。
type CreateQuoteRequest struct {
	CustomerID  string  `json:"customerId"`
	ProductID   string  `json:"productId"`
	UnitPrice   float64 `json:"unitPrice"`
	MinOrderQty float64 `json:"minOrderQty"`
	ValidUntil  string  `json:"validUntil"`
	Status      string  `json:"status"`
	Remark      string  `json:"remark"`
	CreatedBy   string  `json:"createdBy"`
}

// AddQuote 新建报价。版本号取当前表中同一客户+产品的报价条数加一，
// 只在创建时计算一次，历史报价不会被重新编号。
func (s *Store) AddQuote(req CreateQuoteRequest) entity.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := 1
	for _, q := range s.quotes {
		if q.CustomerID == req.CustomerID && q.ProductID == req.ProductID {
			version++
		}
	}

	q := entity.Quote{
		ID:          GenerateID(),
		QuoteNo:     GenerateQuoteNo(),
		CustomerID:  req.CustomerID,
		ProductID:   req.ProductID,
		UnitPrice:   req.UnitPrice,
		MinOrderQty: req.MinOrderQty,
		ValidUntil:  req.ValidUntil,
		Version:     version,
		Status:      req.Status,
		Remark:      req.Remark,
		CreatedAt:   time.Now(),
		CreatedBy:   req.CreatedBy,
	}
	s.quotes = append(s.quotes, q)
	s.persist()
	return q
}

// UpdateQuoteRequest 报价的部分更新，nil 字段保持原值。
// 版本号不可更新。
type UpdateQuoteRequest struct {
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	MinOrderQty *float64 `json:"minOrderQty,omitempty"`
	ValidUntil  *string  `json:"validUntil,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Remark      *string  `json:"remark,omitempty"`
}

// UpdateQuote 浅合并更新报价。id 不存在时静默不变。
func (s *Store) UpdateQuote(id string, req UpdateQuoteRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quotes {
		if s.quotes[i].ID != id {
			continue
		}
		q := &s.quotes[i]
		if req.UnitPrice != nil {
			q.UnitPrice = *req.UnitPrice
		}
		if req.MinOrderQty != nil {
			q.MinOrderQty = *req.MinOrderQty
		}
		if req.ValidUntil != nil {
			q.ValidUntil = *req.ValidUntil
		}
		if req.Status != nil {
			q.Status = *req.Status
		}
		if req.Remark != nil {
			q.Remark = *req.Remark
		}
		s.persist()
		return
	}
}

// GetQuoteByID 按 id 查报价
func (s *Store) GetQuoteByID(id string) (entity.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.quotes {
		if q.ID == id {
			return q, true
		}
	}
	return entity.Quote{}, false
}

// GetQuotesByCustomerID 查客户的全部报价，无匹配时返回空切片
func (s *Store) GetQuotesByCustomerID(customerID string) []entity.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	quotes := make([]entity.Quote, 0)
	for _, q := range s.quotes {
		if q.CustomerID == customerID {
			quotes = append(quotes, q)
		}
	}
	return quotes
}
