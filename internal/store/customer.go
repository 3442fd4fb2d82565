package store

import (
	"time"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
)

// CreateCustomerRequest 新建客户的调用方字段。
// id、createdAt、contacts 由 Store 生成。
type CreateCustomerRequest struct {
	CompanyName  string `json:"companyName"`
	ShortName    string `json:"shortName"`
	CustomerType string `json:"customerType"`
	Status       string `json:"status"`
	Region       string `json:"region"`
	Address      string `json:"address"`
	OwnerID      string `json:"ownerId"`
	Remark       string `json:"remark"`
}

// AddCustomer 新建客户，联系人初始为空列表
func (s *Store) AddCustomer(req CreateCustomerRequest) entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := entity.Customer{
		ID:           GenerateID(),
		CompanyName:  req.CompanyName,
		ShortName:    req.ShortName,
		CustomerType: req.CustomerType,
		Status:       req.Status,
		Region:       req.Region,
		Address:      req.Address,
		OwnerID:      req.OwnerID,
		Remark:       req.Remark,
		CreatedAt:    time.Now(),
		Contacts:     []entity.Contact{},
	}
	s.customers = append(s.customers, c)
	s.persist()
	return c
}

// UpdateCustomerRequest 客户的部分更新，nil 字段保持原值
type UpdateCustomerRequest struct {
	CompanyName  *string          `json:"companyName,omitempty"`
	ShortName    *string          `json:"shortName,omitempty"`
	CustomerType *string          `json:"customerType,omitempty"`
	Status       *string          `json:"status,omitempty"`
	Region       *string          `json:"region,omitempty"`
	Address      *string          `json:"address,omitempty"`
	OwnerID      *string          `json:"ownerId,omitempty"`
	Remark       *string          `json:"remark,omitempty"`
	Contacts     []entity.Contact `json:"contacts,omitempty"`
}

// UpdateCustomer 浅合并更新客户。id 不存在时静默不变，
// 调用方如需确认结果应重新查询。
func (s *Store) UpdateCustomer(id string, req UpdateCustomerRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		c := &s.customers[i]
		if req.CompanyName != nil {
			c.CompanyName = *req.CompanyName
		}
		if req.ShortName != nil {
			c.ShortName = *req.ShortName
		}
		if req.CustomerType != nil {
			c.CustomerType = *req.CustomerType
		}
		if req.Status != nil {
			c.Status = *req.Status
		}
		if req.Region != nil {
			c.Region = *req.Region
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.OwnerID != nil {
			c.OwnerID = *req.OwnerID
		}
		if req.Remark != nil {
			c.Remark = *req.Remark
		}
		if req.Contacts != nil {
			c.Contacts = req.Contacts
		}
		s.persist()
		return
	}
}

// DeleteCustomer 删除客户。不级联删除其订单、报价、打样和跟进记录，
// 这些记录保留悬空的 customerId。id 不存在时静默不变。
func (s *Store) DeleteCustomer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			s.persist()
			return
		}
	}
}

// GetCustomerByID 按 id 查客户
func (s *Store) GetCustomerByID(id string) (entity.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}
