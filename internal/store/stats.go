package store

import (
	"time"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
)

const dateLayout = "2006-01-02"

// DashboardStats 工作台汇总数据
type DashboardStats struct {
	ActiveOrders    int     `json:"activeOrders"`    // 进行中订单（未完成且未取消）
	PendingOrders   int     `json:"pendingOrders"`   // 待确认订单
	ActiveCustomers int     `json:"activeCustomers"` // 合作中客户
	PendingQuotes   int     `json:"pendingQuotes"`   // 待审批报价
	ActiveSamples   int     `json:"activeSamples"`   // 进行中打样（未到终态）
	UrgentOrders    int     `json:"urgentOrders"`    // 临期订单（3 天内到交期）
	MonthlyOrders   int     `json:"monthlyOrders"`   // 本月订单数
	MonthlySales    float64 `json:"monthlySales"`    // 本月销售额
}

// Stats 以 time.Now 为基准计算工作台汇总
func (s *Store) Stats() DashboardStats {
	return s.StatsAt(time.Now())
}

// StatsAt 以指定时刻为基准计算工作台汇总。
// 业务日期解析失败的订单不计入临期和本月统计。
func (s *Store) StatsAt(now time.Time) DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats DashboardStats
	deadline := now.Add(3 * 24 * time.Hour)

	for _, o := range s.orders {
		if o.Status != entity.OrderStatusCompleted && o.Status != entity.OrderStatusCancelled {
			stats.ActiveOrders++
		}
		if o.Status == entity.OrderStatusPending {
			stats.PendingOrders++
		}

		if o.Status != entity.OrderStatusCompleted &&
			o.Status != entity.OrderStatusCancelled &&
			o.Status != entity.OrderStatusShipped {
			if d, err := time.ParseInLocation(dateLayout, o.DeliveryDate, now.Location()); err == nil && !d.After(deadline) {
				stats.UrgentOrders++
			}
		}

		if d, err := time.ParseInLocation(dateLayout, o.OrderDate, now.Location()); err == nil &&
			d.Year() == now.Year() && d.Month() == now.Month() {
			stats.MonthlyOrders++
			stats.MonthlySales += o.TotalAmount
		}
	}

	for _, c := range s.customers {
		if c.Status == entity.CustomerStatusActive {
			stats.ActiveCustomers++
		}
	}
	for _, q := range s.quotes {
		if q.Status == entity.QuoteStatusPending {
			stats.PendingQuotes++
		}
	}
	for _, sm := range s.samples {
		if !entity.SampleStatusTerminal(sm.Status) {
			stats.ActiveSamples++
		}
	}
	return stats
}
