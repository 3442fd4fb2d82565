package entity

// UserRole 用户角色
const (
	RoleSales        = "SALES"         // 业务员
	RoleSalesManager = "SALES_MANAGER" // 销售主管
	RoleRD           = "RD"            // 研发工程师
	RoleRDManager    = "RD_MANAGER"    // 研发主管
	RoleQC           = "QC"            // 品控专员
	RoleQCManager    = "QC_MANAGER"    // 品控主管
	RoleProduction   = "PRODUCTION"    // 生产调度
	RoleAdmin        = "ADMIN"         // 系统管理员
	RoleBoss         = "BOSS"          // 管理层
)

var userRoleLabels = map[string]string{
	RoleSales:        "业务员",
	RoleSalesManager: "销售主管",
	RoleRD:           "研发工程师",
	RoleRDManager:    "研发主管",
	RoleQC:           "品控专员",
	RoleQCManager:    "品控主管",
	RoleProduction:   "生产调度",
	RoleAdmin:        "系统管理员",
	RoleBoss:         "管理层",
}

// UserRoleLabel 返回角色的中文显示名，未知角色原样返回
func UserRoleLabel(role string) string {
	if label, ok := userRoleLabels[role]; ok {
		return label
	}
	return role
}

// User 内部用户，属参考数据，每次加载时以内置数据覆盖
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}
