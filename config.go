package metricify

import (
	"sync"

	"github.com/riverfjs/metricify-go/internal/types"
)

// 导出类型别名
type (
	RenderConfig = types.RenderConfig
	Dimension    = types.Dimension
	Span         = types.Span
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
