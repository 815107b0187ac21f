package xprocconf

// Options 定义加载选项。
type Options struct {
	// Path 绑定在配置树中的键路径，默认为 "logging_context"。
	// 设为空字符串表示绑定位于配置树根部。
	Path string

	// Delim 配置键的分隔符，默认为 "."。
	Delim string
}

// Option 定义加载选项函数类型。
type Option func(*Options)

// defaultOptions 返回默认加载选项。
func defaultOptions() *Options {
	return &Options{
		Path:  "logging_context",
		Delim: ".",
	}
}

// WithPath 设置绑定在配置树中的键路径。
// 空字符串表示绑定位于配置树根部。
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithDelim 设置配置键分隔符。
// 默认为 "."，例如 "engine.logging_context.activity_id"。
func WithDelim(delim string) Option {
	return func(o *Options) {
		o.Delim = delim
	}
}
