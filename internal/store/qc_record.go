package store

import (
	"time"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
)

// CreateQcRecordRequest 新建质检记录的调用方字段。
// id、recordNo、createdAt 由 Store 生成。
type CreateQcRecordRequest struct {
	OrderID     string `json:"orderId"`
	InspectType string `json:"inspectType"`
	InspectorID string `json:"inspectorId"`
	Result      string `json:"result"`
	DefectDesc  string `json:"defectDesc"`
	InspectDate string `json:"inspectDate"`
}

// AddQcRecord 新建质检记录。质检记录创建后不可修改。
func (s *Store) AddQcRecord(req CreateQcRecordRequest) entity.QcRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := entity.QcRecord{
		ID:          GenerateID(),
		RecordNo:    GenerateQcRecordNo(),
		OrderID:     req.OrderID,
		InspectType: req.InspectType,
		InspectorID: req.InspectorID,
		Result:      req.Result,
		DefectDesc:  req.DefectDesc,
		InspectDate: req.InspectDate,
		CreatedAt:   time.Now(),
	}
	s.qcRecords = append(s.qcRecords, r)
	s.persist()
	return r
}

// GetQcRecordByID 按 id 查质检记录
func (s *Store) GetQcRecordByID(id string) (entity.QcRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.qcRecords {
		if r.ID == id {
			return r, true
		}
	}
	return entity.QcRecord{}, false
}

// GetQcRecordsByOrderID 查订单的全部质检记录，无匹配时返回空切片
func (s *Store) GetQcRecordsByOrderID(orderID string) []entity.QcRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]entity.QcRecord, 0)
	for _, r := range s.qcRecords {
		if r.OrderID == orderID {
			records = append(records, r)
		}
	}
	return records
}
