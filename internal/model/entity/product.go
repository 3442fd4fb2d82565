package entity

// Product 产品目录，属参考数据，每次加载时以内置数据覆盖
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Spec        string  `json:"spec"`   // 规格，如 "6寸/8寸"
	Weight      float64 `json:"weight"` // 克重 (克)
	Unit        string  `json:"unit"`
	Description string  `json:"description,omitempty"`
}
