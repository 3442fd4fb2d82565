package store

import (
	"time"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
)

// CreateSampleRequest 新建打样的调用方字段。
// id、sampleNo、createdAt 由 Store 生成。
type CreateSampleRequest struct {
	CustomerID      string `json:"customerId"`
	RequesterID     string `json:"requesterId"`
	AssigneeID      string `json:"assigneeId"`
	ProductName     string `json:"productName"`
	Requirements    string `json:"requirements"`
	ReferenceSample string `json:"referenceSample"`
	Status          string `json:"status"`
	ExpectedDate    string `json:"expectedDate"`
	Remark          string `json:"remark"`
}

// AddSample 新建打样
func (s *Store) AddSample(req CreateSampleRequest) entity.Sample {
	s.mu.Lock()
	defer s.mu.Unlock()

	sm := entity.Sample{
		ID:              GenerateID(),
		SampleNo:        GenerateSampleNo(),
		CustomerID:      req.CustomerID,
		RequesterID:     req.RequesterID,
		AssigneeID:      req.AssigneeID,
		ProductName:     req.ProductName,
		Requirements:    req.Requirements,
		ReferenceSample: req.ReferenceSample,
		Status:          req.Status,
		ExpectedDate:    req.ExpectedDate,
		Remark:          req.Remark,
		CreatedAt:       time.Now(),
	}
	s.samples = append(s.samples, sm)
	s.persist()
	return sm
}

// UpdateSampleRequest 打样的部分更新，nil 字段保持原值
type UpdateSampleRequest struct {
	AssigneeID      *string `json:"assigneeId,omitempty"`
	ProductName     *string `json:"productName,omitempty"`
	Requirements    *string `json:"requirements,omitempty"`
	ReferenceSample *string `json:"referenceSample,omitempty"`
	Status          *string `json:"status,omitempty"`
	ExpectedDate    *string `json:"expectedDate,omitempty"`
	CompletedDate   *string `json:"completedDate,omitempty"`
	Result          *string `json:"result,omitempty"`
	Remark          *string `json:"remark,omitempty"`
}

// UpdateSample 浅合并更新打样。id 不存在时静默不变。
func (s *Store) UpdateSample(id string, req UpdateSampleRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.samples {
		if s.samples[i].ID != id {
			continue
		}
		sm := &s.samples[i]
		if req.AssigneeID != nil {
			sm.AssigneeID = *req.AssigneeID
		}
		if req.ProductName != nil {
			sm.ProductName = *req.ProductName
		}
		if req.Requirements != nil {
			sm.Requirements = *req.Requirements
		}
		if req.ReferenceSample != nil {
			sm.ReferenceSample = *req.ReferenceSample
		}
		if req.Status != nil {
			sm.Status = *req.Status
		}
		if req.ExpectedDate != nil {
			sm.ExpectedDate = *req.ExpectedDate
		}
		if req.CompletedDate != nil {
			sm.CompletedDate = *req.CompletedDate
		}
		if req.Result != nil {
			sm.Result = *req.Result
		}
		if req.Remark != nil {
			sm.Remark = *req.Remark
		}
		s.persist()
		return
	}
}

// GetSampleByID 按 id 查打样
func (s *Store) GetSampleByID(id string) (entity.Sample, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sm := range s.samples {
		if sm.ID == id {
			return sm, true
		}
	}
	return entity.Sample{}, false
}

// GetSamplesByCustomerID 查客户的全部打样，无匹配时返回空切片
func (s *Store) GetSamplesByCustomerID(customerID string) []entity.Sample {
	s.mu.Lock()
	defer s.mu.Unlock()

	samples := make([]entity.Sample, 0)
	for _, sm := range s.samples {
		if sm.CustomerID == customerID {
			samples = append(samples, sm)
		}
	}
	return samples
}
