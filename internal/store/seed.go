package store

import (
	"time"

	"github.com/dafeige-xiaozu/swj-erp/internal/model/entity"
)

// 种子数据。用户和产品是参考数据，每次加载都会覆盖持久化副本；
// 其余各表只在没有持久化快照时作为初始演示数据。

func seedTime(month, day, hour int) time.Time {
	return time.Date(2026, time.Month(month), day, hour, 0, 0, 0, time.Local)
}

func defaultUsers() []entity.User {
	return []entity.User{
		{ID: "u1", Name: "张伟", Role: entity.RoleSales, Department: "销售部", Phone: "13801830001"},
		{ID: "u2", Name: "李娜", Role: entity.RoleSalesManager, Department: "销售部", Phone: "13801830002"},
		{ID: "u3", Name: "王强", Role: entity.RoleRDManager, Department: "研发部"},
		{ID: "u4", Name: "赵敏", Role: entity.RoleRD, Department: "研发部"},
		{ID: "u5", Name: "陈静", Role: entity.RoleQCManager, Department: "品控部"},
		{ID: "u6", Name: "刘洋", Role: entity.RoleProduction, Department: "生产部"},
		{ID: "u7", Name: "杨帆", Role: entity.RoleQC, Department: "品控部"},
		{ID: "u8", Name: "周磊", Role: entity.RoleAdmin, Department: "综合部"},
		{ID: "u9", Name: "吴国栋", Role: entity.RoleBoss, Department: "管理层"},
	}
}

func defaultProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "原味蛋糕卷", Category: "蛋糕卷", Spec: "28×8cm", Weight: 450, Unit: "条"},
		{ID: "p2", Name: "巧克力蛋糕卷", Category: "蛋糕卷", Spec: "28×8cm", Weight: 460, Unit: "条"},
		{ID: "p3", Name: "肉松小贝", Category: "小贝", Spec: "直径7cm", Weight: 65, Unit: "个"},
		{ID: "p4", Name: "全麦吐司", Category: "吐司", Spec: "450g/条", Weight: 450, Unit: "条"},
		{ID: "p5", Name: "蔓越莓曲奇", Category: "曲奇", Spec: "200g/盒", Weight: 200, Unit: "盒"},
		{ID: "p6", Name: "芝士蛋糕", Category: "蛋糕", Spec: "6寸/8寸", Weight: 600, Unit: "个", Description: "冷链配送"},
	}
}

func defaultCustomers() []entity.Customer {
	return []entity.Customer{
		{
			ID:           "c1",
			CompanyName:  "上海甜心食品有限公司",
			ShortName:    "甜心食品",
			CustomerType: entity.CustomerTypeBrand,
			Status:       entity.CustomerStatusActive,
			Region:       "华东",
			Address:      "上海市闵行区春申路1288号",
			OwnerID:      "u1",
			CreatedAt:    seedTime(1, 6, 9),
			Contacts: []entity.Contact{
				{ID: "ct1", CustomerID: "c1", Name: "王芳", Position: "采购经理", Phone: "13917820011", IsPrimary: true},
				{ID: "ct2", CustomerID: "c1", Name: "钱进", Position: "品控主管", Wechat: "qianjin_qc", IsPrimary: false},
			},
		},
		{
			ID:           "c2",
			CompanyName:  "杭州麦香坊贸易有限公司",
			ShortName:    "麦香坊",
			CustomerType: entity.CustomerTypeTrader,
			Status:       entity.CustomerStatusNegotiating,
			Region:       "华东",
			Address:      "杭州市拱墅区莫干山路972号",
			OwnerID:      "u1",
			CreatedAt:    seedTime(1, 20, 10),
			Contacts: []entity.Contact{
				{ID: "ct3", CustomerID: "c2", Name: "孙莉", Position: "总经理", Phone: "13588110022", IsPrimary: true},
			},
		},
		{
			ID:           "c3",
			CompanyName:  "南京百味连锁超市有限公司",
			ShortName:    "百味超市",
			CustomerType: entity.CustomerTypeRetailer,
			Status:       entity.CustomerStatusPotential,
			Region:       "华东",
			Address:      "南京市建邺区江东中路289号",
			OwnerID:      "u2",
			CreatedAt:    seedTime(2, 9, 14),
			Contacts:     []entity.Contact{},
		},
	}
}

func defaultOrders() []entity.Order {
	return []entity.Order{
		{
			ID: "o1", OrderNo: "OD20260210318", CustomerID: "c1", ProductID: "p1",
			Quantity: 300, Unit: "箱", UnitPrice: 120, TotalAmount: 36000,
			Status: entity.OrderStatusProducing, OrderDate: "2026-02-10", DeliveryDate: "2026-03-05",
			CreatedAt: seedTime(2, 10, 9), UpdatedAt: seedTime(2, 18, 16),
		},
		{
			ID: "o2", OrderNo: "OD20260215642", CustomerID: "c1", ProductID: "p3",
			Quantity: 500, Unit: "箱", UnitPrice: 96, TotalAmount: 48000,
			Status: entity.OrderStatusConfirmed, OrderDate: "2026-02-15", DeliveryDate: "2026-03-12",
			CreatedAt: seedTime(2, 15, 11), UpdatedAt: seedTime(2, 16, 9),
		},
		{
			ID: "o3", OrderNo: "OD20260220087", CustomerID: "c2", ProductID: "p4",
			Quantity: 200, Unit: "箱", UnitPrice: 75, TotalAmount: 15000,
			Status: entity.OrderStatusPending, OrderDate: "2026-02-20", DeliveryDate: "2026-03-20",
			CreatedAt: seedTime(2, 20, 15), UpdatedAt: seedTime(2, 20, 15),
		},
		{
			ID: "o4", OrderNo: "OD20260108453", CustomerID: "c1", ProductID: "p2",
			Quantity: 260, Unit: "箱", UnitPrice: 125, TotalAmount: 32500,
			Status: entity.OrderStatusCompleted, OrderDate: "2026-01-08", DeliveryDate: "2026-01-28",
			ShippedDate: "2026-01-26",
			CreatedAt:   seedTime(1, 8, 10), UpdatedAt: seedTime(1, 29, 17),
		},
	}
}

func defaultQuotes() []entity.Quote {
	return []entity.Quote{
		{
			ID: "q1", QuoteNo: "QT20260105211", CustomerID: "c1", ProductID: "p1",
			UnitPrice: 125, MinOrderQty: 100, ValidUntil: "2026-03-31", Version: 1,
			Status: entity.QuoteStatusApproved, CreatedAt: seedTime(1, 5, 10), CreatedBy: "u1",
		},
		{
			ID: "q2", QuoteNo: "QT20260202578", CustomerID: "c1", ProductID: "p1",
			UnitPrice: 120, MinOrderQty: 200, ValidUntil: "2026-06-30", Version: 2,
			Status: entity.QuoteStatusPending, Remark: "季度返点后价格", CreatedAt: seedTime(2, 2, 14), CreatedBy: "u1",
		},
		{
			ID: "q3", QuoteNo: "QT20260212036", CustomerID: "c3", ProductID: "p6",
			UnitPrice: 45, MinOrderQty: 50, ValidUntil: "2026-05-31", Version: 1,
			Status: entity.QuoteStatusDraft, CreatedAt: seedTime(2, 12, 9), CreatedBy: "u2",
		},
	}
}

func defaultSamples() []entity.Sample {
	return []entity.Sample{
		{
			ID: "s1", SampleNo: "SP20260128455", CustomerID: "c2", RequesterID: "u1", AssigneeID: "u4",
			ProductName: "低糖蛋糕卷", Requirements: "减糖30%，口感保持，保质期≥7天",
			Status: entity.SampleStatusDeveloping, ExpectedDate: "2026-03-15",
			CreatedAt: seedTime(1, 28, 10),
		},
		{
			ID: "s2", SampleNo: "SP20260110902", CustomerID: "c1", RequesterID: "u1", AssigneeID: "u4",
			ProductName: "抹茶蛋糕卷", Requirements: "抹茶粉使用宇治产，色泽自然",
			Status: entity.SampleStatusPassed, ExpectedDate: "2026-01-25", CompletedDate: "2026-01-22",
			Result: entity.SampleResultPassed, CreatedAt: seedTime(1, 10, 9),
		},
		{
			ID: "s3", SampleNo: "SP20260218133", CustomerID: "c3", RequesterID: "u2",
			ProductName: "迷你芝士蛋糕", Requirements: "单个80g，便利店冷柜规格",
			Status: entity.SampleStatusSubmitted, ExpectedDate: "2026-03-25",
			CreatedAt: seedTime(2, 18, 11),
		},
	}
}

func defaultQcRecords() []entity.QcRecord {
	return []entity.QcRecord{
		{
			ID: "r1", RecordNo: "QC20260216774", OrderID: "o1", InspectType: entity.InspectTypeProcess,
			InspectorID: "u7", Result: entity.QcResultPass, InspectDate: "2026-02-16T10:30:00",
			CreatedAt: seedTime(2, 16, 10),
		},
		{
			ID: "r2", RecordNo: "QC20260126390", OrderID: "o4", InspectType: entity.InspectTypeFinal,
			InspectorID: "u7", Result: entity.QcResultConcession, DefectDesc: "部分外箱轻微压痕，内包装完好",
			InspectDate: "2026-01-26T09:00:00", CreatedAt: seedTime(1, 26, 9),
		},
	}
}

func defaultFollowUps() []entity.FollowUp {
	return []entity.FollowUp{
		{
			ID: "f1", CustomerID: "c1", UserID: "u1", Type: entity.FollowUpTypeVisit,
			Content: "拜访采购经理，确认三月排产计划", NextFollowDate: "2026-03-10",
			CreatedAt: seedTime(2, 12, 15),
		},
		{
			ID: "f2", CustomerID: "c2", UserID: "u1", Type: entity.FollowUpTypeCall,
			Content: "电话沟通低糖蛋糕卷打样进度，客户希望提前送样",
			CreatedAt: seedTime(2, 19, 10),
		},
		{
			ID: "f3", CustomerID: "c3", UserID: "u2", Type: entity.FollowUpTypeWechat,
			Content: "微信发送产品目录和报价单草稿", NextFollowDate: "2026-03-01",
			CreatedAt: seedTime(2, 13, 16),
		},
	}
}

// defaultSnapshot 内置默认状态，当前用户默认为第一个业务员
func defaultSnapshot() Snapshot {
	return Snapshot{
		Customers:     defaultCustomers(),
		Orders:        defaultOrders(),
		Quotes:        defaultQuotes(),
		Samples:       defaultSamples(),
		QcRecords:     defaultQcRecords(),
		FollowUps:     defaultFollowUps(),
		Products:      defaultProducts(),
		Users:         defaultUsers(),
		CurrentUserID: "u1",
	}
}
