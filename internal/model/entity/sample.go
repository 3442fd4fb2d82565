package entity

import (
	"time"
)

// SampleStatus 打样状态
const (
	SampleStatusSubmitted  = "SUBMITTED"  // 已提交
	SampleStatusReviewing  = "REVIEWING"  // 评审中
	SampleStatusDeveloping = "DEVELOPING" // 开发中
	SampleStatusTrial      = "TRIAL"      // 试产中
	SampleStatusSent       = "SENT"       // 已送样
	SampleStatusFeedback   = "FEEDBACK"   // 待反馈
	SampleStatusPassed     = "PASSED"     // 已通过（终态）
	SampleStatusAdjusting  = "ADJUSTING"  // 调整中（侧分支）
	SampleStatusTerminated = "TERMINATED" // 已终止（终态）
)

// SampleResult 打样结论
const (
	SampleResultPassed    = "PASSED"
	SampleResultFailed    = "FAILED"
	SampleResultAdjusting = "ADJUSTING"
)

var sampleStatusLabels = map[string]string{
	SampleStatusSubmitted:  "已提交",
	SampleStatusReviewing:  "评审中",
	SampleStatusDeveloping: "开发中",
	SampleStatusTrial:      "试产中",
	SampleStatusSent:       "已送样",
	SampleStatusFeedback:   "待反馈",
	SampleStatusPassed:     "已通过",
	SampleStatusAdjusting:  "调整中",
	SampleStatusTerminated: "已终止",
}

// SampleStatusLabel 返回打样状态的中文显示名
func SampleStatusLabel(status string) string {
	if label, ok := sampleStatusLabels[status]; ok {
		return label
	}
	return status
}

// SampleStatusTerminal 判断打样状态是否为终态
func SampleStatusTerminal(status string) bool {
	return status == SampleStatusPassed || status == SampleStatusTerminated
}

// Sample 打样（产品开发试做）
type Sample struct {
	ID              string    `json:"id"`
	SampleNo        string    `json:"sampleNo"`
	CustomerID      string    `json:"customerId"`
	RequesterID     string    `json:"requesterId"`
	AssigneeID      string    `json:"assigneeId,omitempty"`
	ProductName     string    `json:"productName"`
	Requirements    string    `json:"requirements"`
	ReferenceSample string    `json:"referenceSample,omitempty"`
	Status          string    `json:"status"`
	ExpectedDate    string    `json:"expectedDate"` // 期望完成日期，YYYY-MM-DD
	CompletedDate   string    `json:"completedDate,omitempty"`
	Result          string    `json:"result,omitempty"`
	Remark          string    `json:"remark,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
