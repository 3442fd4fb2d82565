package store

import (
	"testing"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 从潜在客户到成交的完整业务链路：
// 建客户 → 跟进 → 报价 → 批准 → 打样 → 通过 → 下单 → 推进到完成 → 客户转为合作中
func TestCustomerLifecycleFlow(t *testing.T) {
	s := newTestStore(t)
	usersBefore := s.Users()
	productsBefore := s.Products()

	c := s.AddCustomer(CreateCustomerRequest{
		CompanyName:  "宁波壹号仓超市有限公司",
		ShortName:    "壹号仓",
		CustomerType: entity.CustomerTypeRetailer,
		Status:       entity.CustomerStatusPotential,
		Region:       "华东",
		Address:      "宁波市鄞州区首南街道泰康路198号",
		OwnerID:      "u1",
	})
	assert.Equal(t, entity.CustomerStatusPotential, c.Status)

	f := s.AddFollowUp(CreateFollowUpRequest{
		CustomerID: c.ID,
		UserID:     "u1",
		Type:       entity.FollowUpTypeVisit,
		Content:    "首次拜访，了解门店烘焙柜需求",
	})
	require.Len(t, s.GetFollowUpsByCustomerID(c.ID), 1)
	assert.Equal(t, f.ID, s.GetFollowUpsByCustomerID(c.ID)[0].ID)

	q := s.AddQuote(CreateQuoteRequest{
		CustomerID:  c.ID,
		ProductID:   "p1",
		UnitPrice:   125,
		MinOrderQty: 100,
		ValidUntil:  "2026-06-30",
		Status:      entity.QuoteStatusPending,
		CreatedBy:   "u1",
	})
	assert.Equal(t, 1, q.Version)

	approved := entity.QuoteStatusApproved
	s.UpdateQuote(q.ID, UpdateQuoteRequest{Status: &approved})
	gotQuote, ok := s.GetQuoteByID(q.ID)
	require.True(t, ok)
	assert.Equal(t, entity.QuoteStatusApproved, gotQuote.Status)

	sm := s.AddSample(CreateSampleRequest{
		CustomerID:   c.ID,
		RequesterID:  "u1",
		AssigneeID:   "u4",
		ProductName:  "原味蛋糕卷",
		Requirements: "常规配方，门店现售包装",
		Status:       entity.SampleStatusSubmitted,
		ExpectedDate: "2026-04-10",
	})
	passed := entity.SampleStatusPassed
	result := entity.SampleResultPassed
	completed := "2026-04-08"
	s.UpdateSample(sm.ID, UpdateSampleRequest{
		Status:        &passed,
		Result:        &result,
		CompletedDate: &completed,
	})
	gotSample, ok := s.GetSampleByID(sm.ID)
	require.True(t, ok)
	assert.Equal(t, entity.SampleStatusPassed, gotSample.Status)
	assert.Equal(t, entity.SampleResultPassed, gotSample.Result)

	o := s.AddOrder(CreateOrderRequest{
		CustomerID:   c.ID,
		ProductID:    "p1",
		Quantity:     150,
		Unit:         "箱",
		UnitPrice:    125,
		TotalAmount:  18750,
		Status:       entity.OrderStatusPending,
		OrderDate:    "2026-04-12",
		DeliveryDate: "2026-04-28",
	})
	for _, status := range []string{
		entity.OrderStatusConfirmed,
		entity.OrderStatusProducing,
		entity.OrderStatusCompleted,
	} {
		s.UpdateOrderStatus(o.ID, status)
		got, ok := s.GetOrderByID(o.ID)
		require.True(t, ok)
		assert.Equal(t, status, got.Status)
	}

	active := entity.CustomerStatusActive
	s.UpdateCustomer(c.ID, UpdateCustomerRequest{Status: &active})
	gotCustomer, ok := s.GetCustomerByID(c.ID)
	require.True(t, ok)
	assert.Equal(t, entity.CustomerStatusActive, gotCustomer.Status)
	// 其余字段未被波及
	assert.Equal(t, "壹号仓", gotCustomer.ShortName)
	assert.Equal(t, "u1", gotCustomer.OwnerID)

	// 参考数据全程未被触碰
	assert.Equal(t, usersBefore, s.Users())
	assert.Equal(t, productsBefore, s.Products())

	// 子表按客户归档完整
	assert.Len(t, s.GetQuotesByCustomerID(c.ID), 1)
	assert.Len(t, s.GetSamplesByCustomerID(c.ID), 1)
	assert.Len(t, s.GetOrdersByCustomerID(c.ID), 1)
}

// 同一客户+产品两次报价，版本递增且互不覆盖
func TestRepeatQuoteFlow(t *testing.T) {
	s := newTestStore(t)

	first := s.AddQuote(CreateQuoteRequest{
		CustomerID: "c3", ProductID: "p3",
		UnitPrice: 98, MinOrderQty: 50, ValidUntil: "2026-05-31",
		Status: entity.QuoteStatusPending, CreatedBy: "u2",
	})
	second := s.AddQuote(CreateQuoteRequest{
		CustomerID: "c3", ProductID: "p3",
		UnitPrice: 92, MinOrderQty: 100, ValidUntil: "2026-06-30",
		Status: entity.QuoteStatusPending, CreatedBy: "u2",
	})

	assert.Equal(t, first.Version+1, second.Version)

	got1, ok := s.GetQuoteByID(first.ID)
	require.True(t, ok)
	got2, ok := s.GetQuoteByID(second.ID)
	require.True(t, ok)
	assert.Equal(t, 98.0, got1.UnitPrice)
	assert.Equal(t, 92.0, got2.UnitPrice)
	assert.NotEqual(t, got1.QuoteNo, got2.QuoteNo)
}
