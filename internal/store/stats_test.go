package store

import (
	"testing"
	"time"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsAtSeedData(t *testing.T) {
	s := newTestStore(t)

	now := time.Date(2026, 2, 25, 12, 0, 0, 0, time.Local)
	stats := s.StatsAt(now)

	// 种子数据：o1 PRODUCING、o2 CONFIRMED、o3 PENDING 进行中，o4 已完成
	assert.Equal(t, 3, stats.ActiveOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	// 2 月下单：o1、o2、o3
	assert.Equal(t, 3, stats.MonthlyOrders)
	assert.Equal(t, 36000.0+48000.0+15000.0, stats.MonthlySales)
	// 交期都在 2/28 之后
	assert.Equal(t, 0, stats.UrgentOrders)

	assert.Equal(t, 1, stats.ActiveCustomers)
	assert.Equal(t, 1, stats.PendingQuotes)
	// s1 DEVELOPING、s3 SUBMITTED 进行中，s2 已通过
	assert.Equal(t, 2, stats.ActiveSamples)
}

func TestStatsUrgentOrders(t *testing.T) {
	s := newTestStore(t)

	// 3/3 为基准，o1 交期 3/5 在 3 天窗口内
	now := time.Date(2026, 3, 3, 9, 0, 0, 0, time.Local)
	stats := s.StatsAt(now)
	assert.Equal(t, 1, stats.UrgentOrders)

	// 已发货订单即使临期也不计
	s.UpdateOrderStatus("o1", entity.OrderStatusShipped)
	stats = s.StatsAt(now)
	assert.Equal(t, 0, stats.UrgentOrders)
}

func TestStatsReactsToMutations(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2026, 2, 25, 12, 0, 0, 0, time.Local)
	before := s.StatsAt(now)

	s.AddOrder(CreateOrderRequest{
		CustomerID: "c2", ProductID: "p4",
		Quantity: 100, Unit: "箱", UnitPrice: 75, TotalAmount: 7500,
		Status: entity.OrderStatusPending, OrderDate: "2026-02-24", DeliveryDate: "2026-03-30",
	})
	status := entity.CustomerStatusActive
	s.UpdateCustomer("c2", UpdateCustomerRequest{Status: &status})

	after := s.StatsAt(now)
	assert.Equal(t, before.ActiveOrders+1, after.ActiveOrders)
	assert.Equal(t, before.PendingOrders+1, after.PendingOrders)
	assert.Equal(t, before.MonthlySales+7500, after.MonthlySales)
	assert.Equal(t, before.ActiveCustomers+1, after.ActiveCustomers)
}

// 业务日期解析失败的订单不计入临期和本月统计
func TestStatsSkipsUnparsableDates(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2026, 2, 25, 12, 0, 0, 0, time.Local)
	before := s.StatsAt(now)

	o := s.AddOrder(CreateOrderRequest{
		CustomerID: "c1", ProductID: "p1",
		Quantity: 10, Unit: "箱", UnitPrice: 100, TotalAmount: 1000,
		Status: entity.OrderStatusPending, OrderDate: "日期待定", DeliveryDate: "",
	})
	require.NotEmpty(t, o.ID)

	after := s.StatsAt(now)
	assert.Equal(t, before.MonthlyOrders, after.MonthlyOrders)
	assert.Equal(t, before.UrgentOrders, after.UrgentOrders)
	assert.Equal(t, before.ActiveOrders+1, after.ActiveOrders)
}
