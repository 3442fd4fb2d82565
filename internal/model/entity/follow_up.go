package entity

import (
	"time"
)

// FollowUpType 跟进方式
const (
	FollowUpTypeVisit  = "VISIT"  // 拜访
	FollowUpTypeCall   = "CALL"   // 电话
	FollowUpTypeWechat = "WECHAT" // 微信
	FollowUpTypeEmail  = "EMAIL"  // 邮件
	FollowUpTypeOther  = "OTHER"  // 其他
)

var followUpTypeLabels = map[string]string{
	FollowUpTypeVisit:  "拜访",
	FollowUpTypeCall:   "电话",
	FollowUpTypeWechat: "微信",
	FollowUpTypeEmail:  "邮件",
	FollowUpTypeOther:  "其他",
}

// FollowUpTypeLabel 返回跟进方式的中文显示名
func FollowUpTypeLabel(t string) string {
	if label, ok := followUpTypeLabels[t]; ok {
		return label
	}
	return t
}

// FollowUp 客户跟进记录
type FollowUp struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	UserID         string    `json:"userId"`
	Type           string    `json:"type"`
	Content        string    `json:"content"`
	NextFollowDate string    `json:"nextFollowDate,omitempty"` // 下次跟进日期，YYYY-MM-DD
	Attachments    []string  `json:"attachments,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
