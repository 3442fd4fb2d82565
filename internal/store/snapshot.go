package store

import (
	"encoding/json"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
	"go.uber.org/zap"
)

// SchemaVersion 快照结构版本。版本 2 起产品表带规格和克重字段。
const SchemaVersion = 2

// DefaultSnapshotName 快照在 blob 存储中的默认键名
const DefaultSnapshotName = "swj-erp-storage"

// Snapshot 持久化快照：八张表加当前用户引用，整体 JSON 序列化
type Snapshot struct {
	Customers     []entity.Customer `json:"customers"`
	Orders        []entity.Order    `json:"orders"`
	Quotes        []entity.Quote    `json:"quotes"`
	Samples       []entity.Sample   `json:"samples"`
	QcRecords     []entity.QcRecord `json:"qcRecords"`
	FollowUps     []entity.FollowUp `json:"followUps"`
	Products      []entity.Product  `json:"products"`
	Users         []entity.User     `json:"users"`
	CurrentUserID string            `json:"currentUserId,omitempty"`
}

// snapshot 取当前状态的快照。调用方需持有 s.mu。
func (s *Store) snapshot() Snapshot {
	snap := Snapshot{
		Customers: s.customers,
		Orders:    s.orders,
		Quotes:    s.quotes,
		Samples:   s.samples,
		QcRecords: s.qcRecords,
		FollowUps: s.followUps,
		Products:  s.products,
		Users:     s.users,
	}
	if s.currentUser != nil {
		snap.CurrentUserID = s.currentUser.ID
	}
	return snap
}

// loadSnapshot 启动时的快照合并：
//   - 版本不符时放弃持久化数据，整体回到内置默认状态；
//   - 版本相符时把持久化数据浅合并到默认快照上（快照里出现的表
//     整表覆盖默认值，缺失的键保留默认值）；
//   - 无论持久化内容如何，产品表和用户表始终取内置默认值，
//     参考数据必须跟随当前构建而非陈旧副本。
func loadSnapshot(data []byte, version int, logger *zap.Logger) Snapshot {
	if version != SchemaVersion {
		logger.Warn("快照版本不符，使用默认数据",
			zap.Int("persisted", version),
			zap.Int("current", SchemaVersion))
		return defaultSnapshot()
	}

	snap := defaultSnapshot()
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn("快照解析失败，使用默认数据", zap.Error(err))
		return defaultSnapshot()
	}

	snap.Products = defaultProducts()
	snap.Users = defaultUsers()
	return snap
}
