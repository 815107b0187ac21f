package xprocdata_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/omeyang/flowkit/pkg/observability/xmdc"
	"github.com/omeyang/flowkit/pkg/observability/xprocdata"
)

// exampleExecution 示例用的执行模型实现。
type exampleExecution struct {
	activityID string
	tenantID   string
}

func (e *exampleExecution) ActivityID() (string, bool)          { return e.activityID, e.activityID != "" }
func (e *exampleExecution) ProcessDefinitionID() (string, bool) { return "", false }
func (e *exampleExecution) ProcessInstanceID() (string, bool)   { return "", false }
func (e *exampleExecution) TenantID() (string, bool)            { return e.tenantID, e.tenantID != "" }
func (e *exampleExecution) BusinessKey() (string, bool)         { return "", false }

// Example 演示完整流程：section 推送期间发出的日志自动携带流程上下文字段。
func Example() {
	store := xmdc.NewMapStore()

	// 日志后端：TagHandler 装饰的 slog（示例中去掉时间戳以稳定输出）
	base := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	handler, err := xmdc.NewTagHandler(base, store)
	if err != nil {
		fmt.Printf("failed to create handler: %v\n", err)
		return
	}
	logger := slog.New(handler)

	props := xprocdata.Properties{ActivityID: "activityId", TenantID: "tenantId"}
	pd, err := xprocdata.New(props, store)
	if err != nil {
		fmt.Printf("failed to create context: %v\n", err)
		return
	}

	exec := &exampleExecution{activityID: "approve-invoice", tenantID: "tenant-1"}
	if pd.PushSection(exec) {
		logger.Info("activity started")
		pd.PopSection()
	}
	logger.Info("scope closed")

	// Output:
	// level=INFO msg="activity started" activityId=approve-invoice tenantId=tenant-1
	// level=INFO msg="scope closed"
}
