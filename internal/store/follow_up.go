package store

import (
	"time"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
)

// CreateFollowUpRequest 新建跟进记录的调用方字段。
// id、createdAt 由 Store 生成。
type CreateFollowUpRequest struct {
	CustomerID     string   `json:"customerId"`
	UserID         string   `json:"userId"`
	Type           string   `json:"type"`
	Content        string   `json:"content"`
	NextFollowDate string   `json:"nextFollowDate"`
	Attachments    []string `json:"attachments"`
}

// AddFollowUp 新建跟进记录。跟进记录创建后不可修改。
func (s *Store) AddFollowUp(req CreateFollowUpRequest) entity.FollowUp {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := entity.FollowUp{
		ID:             GenerateID(),
		CustomerID:     req.CustomerID,
		UserID:         req.UserID,
		Type:           req.Type,
		Content:        req.Content,
		NextFollowDate: req.NextFollowDate,
		Attachments:    req.Attachments,
		CreatedAt:      time.Now(),
	}
	s.followUps = append(s.followUps, f)
	s.persist()
	return f
}

// GetFollowUpsByCustomerID 查客户的全部跟进记录，无匹配时返回空切片
func (s *Store) GetFollowUpsByCustomerID(customerID string) []entity.FollowUp {
	s.mu.Lock()
	defer s.mu.Unlock()

	followUps := make([]entity.FollowUp, 0)
	for _, f := range s.followUps {
		if f.CustomerID == customerID {
			followUps = append(followUps, f)
		}
	}
	return followUps
}
