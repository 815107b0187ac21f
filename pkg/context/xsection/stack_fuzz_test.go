package xsection_test

import (
	"fmt"
	"testing"

	"github.com/omeyang/flowkit/pkg/context/xsection"
)

// FuzzStack_FullUnwind 以随机操作序列驱动栈，验证完全回退不变量：
// 弹出所有开启中的 section 之后，每个属性都回到无值状态。
//
// 输入字节解释为操作流：低两位选择属性，其余位选择动作
// （推送具体值 / 推送显式空值 / 弹出 section）。
func FuzzStack_FullUnwind(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x04, 0x05, 0x02})
	f.Add([]byte{0x10, 0x11, 0x02, 0x02, 0x02})
	f.Add([]byte("push-pop-sequence"))

	properties := []string{"activityId", "tenantId", "processInstanceId", "businessKey"}

	f.Fuzz(func(t *testing.T, ops []byte) {
		s := xsection.New()
		open := 0

		for i, op := range ops {
			property := properties[int(op)&0x03]
			switch (int(op) >> 2) % 3 {
			case 0:
				if s.PushSection(xsection.Entry{Property: property, Value: xsection.String(fmt.Sprintf("v%d", i))}) {
					open++
				}
			case 1:
				if s.PushSection(xsection.Entry{Property: property, Value: xsection.Null()}) {
					open++
				}
			case 2:
				if open > 0 {
					s.PopSection()
					open--
				}
			}
		}

		for ; open > 0; open-- {
			s.PopSection()
		}
		for _, property := range properties {
			if s.Latest(property).IsPresent() {
				t.Errorf("完全回退后 Latest(%s) 仍有值", property)
			}
		}
	})
}
