package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateID 生成记录主键。随机令牌，不对已有记录查重，
// 唯一性是概率保证而非强保证。
func GenerateID() string {
	return uuid.New().String()
}

// docNo 单据号：2 位类型前缀 + 8 位当日日期 + 3 位随机尾号，定长 13。
// 同类型同日 1/1000 的撞号概率，不检测也不重试。
func docNo(prefix string) string {
	return fmt.Sprintf("%s%s%03d", prefix, time.Now().Format("20060102"), rand.Intn(1000))
}

// GenerateOrderNo 订单号，OD 开头
func GenerateOrderNo() string {
	return docNo("OD")
}

// GenerateSampleNo 打样号，SP 开头
func GenerateSampleNo() string {
	return docNo("SP")
}

// GenerateQuoteNo 报价号，QT 开头
func GenerateQuoteNo() string {
	return docNo("QT")
}

// GenerateQcRecordNo 质检号，QC 开头
func GenerateQcRecordNo() string {
	return docNo("QC")
}
