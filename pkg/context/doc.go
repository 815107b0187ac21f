// Package context 提供执行上下文管理相关的子包。
//
// 子包列表：
//   - xsection: 分段式多属性值栈，按嵌套作用域跟踪与回退上下文值
//
// 设计原则：
//   - 栈实例与单个逻辑工作单元绑定，不引入全局状态
//   - 变更通过注入的回调向外镜像，核心结构不依赖任何外部设施
package context
