package store

import (
	"testing"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFollowUp(t *testing.T) {
	s := newTestStore(t)
	before := len(s.FollowUps())

	f := s.AddFollowUp(CreateFollowUpRequest{
		CustomerID:     "c1",
		UserID:         "u1",
		Type:           entity.FollowUpTypeVisit,
		Content:        "拜访客户，洽谈Q3计划",
		NextFollowDate: "2026-04-15",
	})

	assert.NotEmpty(t, f.ID)
	assert.False(t, f.CreatedAt.IsZero())

	followUps := s.FollowUps()
	require.Len(t, followUps, before+1)
	assert.Equal(t, "拜访客户，洽谈Q3计划", followUps[len(followUps)-1].Content)
}

func TestGetFollowUpsByCustomerID(t *testing.T) {
	s := newTestStore(t)

	followUps := s.GetFollowUpsByCustomerID("c1")
	require.NotEmpty(t, followUps)
	for _, f := range followUps {
		assert.Equal(t, "c1", f.CustomerID)
	}

	empty := s.GetFollowUpsByCustomerID("non-existent")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
