package xprocconf_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/flowkit/pkg/config/xprocconf"
)

// =============================================================================
// Watch 单元测试
// =============================================================================

func TestWatch_Success(t *testing.T) {
	path := writeFile(t, "ctx.yaml", "logging_context:\n  activity_id: act\n")

	var mu sync.Mutex
	var latest xprocconf.Config
	var lastErr error
	reloaded := make(chan struct{}, 8)

	w, err := xprocconf.Watch(path, func(cfg xprocconf.Config, err error) {
		mu.Lock()
		latest, lastErr = cfg, err
		mu.Unlock()
		reloaded <- struct{}{}
	}, xprocconf.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	w.StartAsync()
	defer func() { _ = w.Stop() }()

	// 等待监视器启动
	time.Sleep(50 * time.Millisecond)

	// 修改配置文件
	require.NoError(t, os.WriteFile(path, []byte("logging_context:\n  activity_id: renamed\n"), 0600))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("等待重载回调超时")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.NoError(t, lastErr)
	assert.Equal(t, "renamed", latest.ActivityID)
}

func TestWatch_InvalidArgs(t *testing.T) {
	t.Run("空路径返回ErrEmptyPath", func(t *testing.T) {
		_, err := xprocconf.Watch("", func(xprocconf.Config, error) {})
		assert.ErrorIs(t, err, xprocconf.ErrEmptyPath)
	})

	t.Run("未知扩展名返回ErrUnsupportedFormat", func(t *testing.T) {
		_, err := xprocconf.Watch("/tmp/ctx.toml", func(xprocconf.Config, error) {})
		assert.ErrorIs(t, err, xprocconf.ErrUnsupportedFormat)
	})
}

func TestWatch_Stop(t *testing.T) {
	path := writeFile(t, "ctx.yaml", "logging_context:\n  activity_id: act\n")

	w, err := xprocconf.Watch(path, func(xprocconf.Config, error) {})
	require.NoError(t, err)

	w.StartAsync()
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, w.Stop())
	// 重复 Stop 为空操作
	require.NoError(t, w.Stop())
}

func TestWatch_StopBeforeStart(t *testing.T) {
	path := writeFile(t, "ctx.yaml", "logging_context: {}\n")

	w, err := xprocconf.Watch(path, func(xprocconf.Config, error) {})
	require.NoError(t, err)

	// 未启动时 Stop 直接返回
	require.NoError(t, w.Stop())
}
