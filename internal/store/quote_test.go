package store

import (
	"strings"
	"testing"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddQuoteFirstVersion(t *testing.T) {
	s := newTestStore(t)

	// c3+p2 此前没有报价
	q := s.AddQuote(CreateQuoteRequest{
		CustomerID:  "c3",
		ProductID:   "p2",
		UnitPrice:   160,
		MinOrderQty: 30,
		ValidUntil:  "2026-09-30",
		Status:      entity.QuoteStatusDraft,
		CreatedBy:   "u1",
	})

	assert.True(t, strings.HasPrefix(q.QuoteNo, "QT"))
	assert.Len(t, q.QuoteNo, 13)
	assert.Equal(t, 1, q.Version)
	assert.False(t, q.CreatedAt.IsZero())
}

func TestAddQuoteVersionIncrements(t *testing.T) {
	s := newTestStore(t)

	first := s.AddQuote(CreateQuoteRequest{
		CustomerID: "c2", ProductID: "p5",
		UnitPrice: 28, MinOrderQty: 100, ValidUntil: "2026-08-31",
		Status: entity.QuoteStatusDraft, CreatedBy: "u1",
	})
	second := s.AddQuote(CreateQuoteRequest{
		CustomerID: "c2", ProductID: "p5",
		UnitPrice: 26, MinOrderQty: 200, ValidUntil: "2026-08-31",
		Status: entity.QuoteStatusDraft, CreatedBy: "u1",
	})

	assert.Equal(t, 1, first.Version)
	assert.Equal(t, first.Version+1, second.Version)

	// 两条报价都可以按 id 独立取回
	got1, ok := s.GetQuoteByID(first.ID)
	require.True(t, ok)
	got2, ok := s.GetQuoteByID(second.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got1.Version)
	assert.Equal(t, 2, got2.Version)
}

// 版本号按客户+产品对独立计数
func TestAddQuoteVersionPerPair(t *testing.T) {
	s := newTestStore(t)

	// 种子数据里 c1+p1 已有两版
	q := s.AddQuote(CreateQuoteRequest{
		CustomerID: "c1", ProductID: "p1",
		UnitPrice: 118, MinOrderQty: 300, ValidUntil: "2026-12-31",
		Status: entity.QuoteStatusDraft, CreatedBy: "u1",
	})
	assert.Equal(t, 3, q.Version)

	// 同客户不同产品从 1 开始
	other := s.AddQuote(CreateQuoteRequest{
		CustomerID: "c1", ProductID: "p4",
		UnitPrice: 78, MinOrderQty: 100, ValidUntil: "2026-12-31",
		Status: entity.QuoteStatusDraft, CreatedBy: "u1",
	})
	assert.Equal(t, 1, other.Version)
}

// 新增报价不会重编历史版本号
func TestAddQuoteKeepsHistoricalVersions(t *testing.T) {
	s := newTestStore(t)

	s.AddQuote(CreateQuoteRequest{
		CustomerID: "c1", ProductID: "p1",
		UnitPrice: 118, MinOrderQty: 300, ValidUntil: "2026-12-31",
		Status: entity.QuoteStatusDraft, CreatedBy: "u1",
	})

	q1, ok := s.GetQuoteByID("q1")
	require.True(t, ok)
	q2, ok := s.GetQuoteByID("q2")
	require.True(t, ok)
	assert.Equal(t, 1, q1.Version)
	assert.Equal(t, 2, q2.Version)
}

func TestUpdateQuote(t *testing.T) {
	s := newTestStore(t)

	status := entity.QuoteStatusApproved
	s.UpdateQuote("q2", UpdateQuoteRequest{Status: &status})

	q, ok := s.GetQuoteByID("q2")
	require.True(t, ok)
	assert.Equal(t, entity.QuoteStatusApproved, q.Status)
	assert.Equal(t, 2, q.Version)
}

func TestUpdateQuoteMissingID(t *testing.T) {
	s := newTestStore(t)
	before := s.Quotes()

	status := entity.QuoteStatusExpired
	s.UpdateQuote("non-existent-id", UpdateQuoteRequest{Status: &status})

	assert.Equal(t, before, s.Quotes())
}

func TestGetQuotesByCustomerID(t *testing.T) {
	s := newTestStore(t)

	quotes := s.GetQuotesByCustomerID("c1")
	require.NotEmpty(t, quotes)
	for _, q := range quotes {
		assert.Equal(t, "c1", q.CustomerID)
	}

	empty := s.GetQuotesByCustomerID("non-existent")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
