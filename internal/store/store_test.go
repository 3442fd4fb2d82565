package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore 无持久化的独立实例，初始状态为内置种子数据
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New()
	require.NoError(t, err)
	return s
}

func TestInitialState(t *testing.T) {
	s := newTestStore(t)

	assert.Len(t, s.Users(), len(defaultUsers()))
	assert.Len(t, s.Products(), len(defaultProducts()))
	assert.Len(t, s.Customers(), len(defaultCustomers()))
	assert.Len(t, s.Orders(), len(defaultOrders()))
	assert.Len(t, s.Quotes(), len(defaultQuotes()))
	assert.Len(t, s.Samples(), len(defaultSamples()))
	assert.Len(t, s.QcRecords(), len(defaultQcRecords()))
	assert.Len(t, s.FollowUps(), len(defaultFollowUps()))
}

func TestInitialCurrentUser(t *testing.T) {
	s := newTestStore(t)

	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "张伟", u.Name)
}

func TestSetCurrentUser(t *testing.T) {
	s := newTestStore(t)

	s.SetCurrentUser("u7")
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "杨帆", u.Name)

	// 未知 id 静默不变
	s.SetCurrentUser("nobody")
	u, _ = s.CurrentUser()
	assert.Equal(t, "u7", u.ID)
}

func TestGetUserByID(t *testing.T) {
	s := newTestStore(t)

	u, ok := s.GetUserByID("u1")
	require.True(t, ok)
	assert.Equal(t, "张伟", u.Name)

	_, ok = s.GetUserByID("non-existent")
	assert.False(t, ok)
}

func TestGetProductByID(t *testing.T) {
	s := newTestStore(t)

	p, ok := s.GetProductByID("p1")
	require.True(t, ok)
	assert.Equal(t, "原味蛋糕卷", p.Name)
	assert.NotEmpty(t, p.Spec)
	assert.Greater(t, p.Weight, 0.0)

	_, ok = s.GetProductByID("non-existent")
	assert.False(t, ok)
}
