// Package store 是全部业务数据的唯一持有者：八张内存表加当前用户，
// 每次变更后把整体快照写入持久化存储。视图层直接读写本包，
// 中间没有服务层。
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
	"github.com/dafeige-xiaozu/swj-erp/internal/persist"
	"go.uber.org/zap"
)

// Store 应用数据容器。所有操作串行化，新增操作由 Store 负责
// 生成 id、单据号、时间戳和报价版本号；外键只是普通字符串，
// 不做引用完整性校验，删除也不级联。
type Store struct {
	mu sync.Mutex

	users     []entity.User
	products  []entity.Product
	customers []entity.Customer
	orders    []entity.Order
	quotes    []entity.Quote
	samples   []entity.Sample
	qcRecords []entity.QcRecord
	followUps []entity.FollowUp

	currentUser *entity.User

	blobs        persist.BlobStore
	snapshotName string
	logger       *zap.Logger
}

type Option func(*Store)

// WithLogger 指定日志器，默认 zap.NewNop
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithBlobStore 启用持久化：启动时从 bs 恢复快照，之后每次变更整体回写。
// name 为空时使用 DefaultSnapshotName。
func WithBlobStore(bs persist.BlobStore, name string) Option {
	return func(s *Store) {
		s.blobs = bs
		if name != "" {
			s.snapshotName = name
		}
	}
}

// New 构造一个独立的 Store 实例。未启用持久化时数据只在内存中，
// 初始状态为内置种子数据；启用持久化时按 loadSnapshot 的规则
// 与已持久化的快照合并。
func New(opts ...Option) (*Store, error) {
	s := &Store{
		snapshotName: DefaultSnapshotName,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	snap := defaultSnapshot()
	if s.blobs != nil {
		data, version, ok, err := s.blobs.Load(s.snapshotName)
		if err != nil {
			return nil, fmt.Errorf("恢复快照失败: %w", err)
		}
		if ok {
			snap = loadSnapshot(data, version, s.logger)
		}
	}
	s.apply(snap)
	return s, nil
}

// apply 把快照装入内存表并解析当前用户引用
func (s *Store) apply(snap Snapshot) {
	s.users = snap.Users
	s.products = snap.Products
	s.customers = snap.Customers
	s.orders = snap.Orders
	s.quotes = snap.Quotes
	s.samples = snap.Samples
	s.qcRecords = snap.QcRecords
	s.followUps = snap.FollowUps

	s.currentUser = nil
	for i := range s.users {
		if s.users[i].ID == snap.CurrentUserID {
			s.currentUser = &s.users[i]
			break
		}
	}
	if s.currentUser == nil && len(s.users) > 0 {
		s.currentUser = &s.users[0]
	}
}

// persist 把当前状态整体写入持久化存储。写失败只记日志，
// 不向调用方反馈。调用方需持有 s.mu。
func (s *Store) persist() {
	if s.blobs == nil {
		return
	}
	data, err := json.Marshal(s.snapshot())
	if err != nil {
		s.logger.Error("快照序列化失败", zap.Error(err))
		return
	}
	if err := s.blobs.Save(s.snapshotName, SchemaVersion, data); err != nil {
		s.logger.Error("快照写入失败",
			zap.String("snapshot", s.snapshotName),
			zap.Error(err))
	}
}

// CurrentUser 当前登录用户
func (s *Store) CurrentUser() (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return entity.User{}, false
	}
	return *s.currentUser, true
}

// SetCurrentUser 切换当前用户。id 不存在时静默不变。
func (s *Store) SetCurrentUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.currentUser = &s.users[i]
			s.persist()
			return
		}
	}
}

// Users 返回用户表的副本
func (s *Store) Users() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.User(nil), s.users...)
}

// Products 返回产品目录的副本
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Product(nil), s.products...)
}

// Customers 返回客户表的副本
func (s *Store) Customers() []entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Customer(nil), s.customers...)
}

// Orders 返回订单表的副本
func (s *Store) Orders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Order(nil), s.orders...)
}

// Quotes 返回报价表的副本
func (s *Store) Quotes() []entity.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Quote(nil), s.quotes...)
}

// Samples 返回打样表的副本
func (s *Store) Samples() []entity.Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Sample(nil), s.samples...)
}

// QcRecords 返回质检记录表的副本
func (s *Store) QcRecords() []entity.QcRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.QcRecord(nil), s.qcRecords...)
}

// FollowUps 返回跟进记录表的副本
func (s *Store) FollowUps() []entity.FollowUp {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.FollowUp(nil), s.followUps...)
}

// GetUserByID 按 id 查用户
func (s *Store) GetUserByID(id string) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return entity.User{}, false
}

// GetProductByID 按 id 查产品
func (s *Store) GetProductByID(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}
