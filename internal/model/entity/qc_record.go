package entity

import (
	"time"
)

// InspectType 检验类型
const (
	InspectTypeIncoming = "INCOMING" // 来料检验
	InspectTypeProcess  = "PROCESS"  // 过程检验
	InspectTypeFinal    = "FINAL"    // 成品检验
)

// QcResult 检验结果
const (
	QcResultPass       = "PASS"       // 合格
	QcResultFail       = "FAIL"       // 不合格
	QcResultConcession = "CONCESSION" // 让步接收
)

var inspectTypeLabels = map[string]string{
	InspectTypeIncoming: "来料检验",
	InspectTypeProcess:  "过程检验",
	InspectTypeFinal:    "成品检验",
}

var qcResultLabels = map[string]string{
	QcResultPass:       "合格",
	QcResultFail:       "不合格",
	QcResultConcession: "让步接收",
}

// InspectTypeLabel 返回检验类型的中文显示名
func InspectTypeLabel(t string) string {
	if label, ok := inspectTypeLabels[t]; ok {
		return label
	}
	return t
}

// QcResultLabel 返回检验结果的中文显示名
func QcResultLabel(result string) string {
	if label, ok := qcResultLabels[result]; ok {
		return label
	}
	return result
}

// QcRecord 质检记录
type QcRecord struct {
	ID          string    `json:"id"`
	RecordNo    string    `json:"recordNo"`
	OrderID     string    `json:"orderId"`
	InspectType string    `json:"inspectType"`
	InspectorID string    `json:"inspectorId"`
	Result      string    `json:"result"`
	DefectDesc  string    `json:"defectDesc,omitempty"`
	InspectDate string    `json:"inspectDate"` // 检验时间，由调用方给定
	CreatedAt   time.Time `json:"createdAt"`
}
