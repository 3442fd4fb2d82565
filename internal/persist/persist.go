// Package persist 提供快照的本地持久化。对 Store 而言它是一个
// 不透明的键值 blob 存储：按名称整存整取，附带结构版本号。
package persist

// BlobStore 不透明键值 blob 存储
type BlobStore interface {
	// Load 按名称读取快照。不存在时返回 ok=false 而非错误。
	Load(name string) (data []byte, version int, ok bool, err error)
	// Save 按名称整体覆盖写入快照。
	Save(name string, version int, data []byte) error
}
