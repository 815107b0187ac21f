package xprocconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Load 从文件加载键名绑定。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string, opts ...Option) (Config, error) {
	if path == "" {
		return Config{}, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return LoadBytes(data, format, opts...)
}

// LoadBytes 从字节数据加载键名绑定。
// 需要显式指定格式，适用于 K8s ConfigMap 等场景。
// 空数据会得到 [Default] 的默认绑定。
func LoadBytes(data []byte, format Format, opts ...Option) (Config, error) {
	if !isValidFormat(format) {
		return Config{}, ErrUnsupportedFormat
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	k := koanf.New(options.Delim)
	if len(data) > 0 {
		if err := loadData(k, data, format); err != nil {
			return Config{}, err
		}
	}

	// 逐键覆盖：文件中出现的键才覆盖默认值。
	// 显式空字符串与缺失因此可区分——前者停用角色，后者保持默认绑定。
	cfg := Default()
	for _, field := range []struct {
		key string
		dst *string
	}{
		{"activity_id", &cfg.ActivityID},
		{"application_name", &cfg.ApplicationName},
		{"business_key", &cfg.BusinessKey},
		{"definition_id", &cfg.DefinitionID},
		{"instance_id", &cfg.InstanceID},
		{"tenant_id", &cfg.TenantID},
	} {
		full := field.key
		if options.Path != "" {
			full = options.Path + options.Delim + field.key
		}
		if k.Exists(full) {
			*field.dst = k.String(full)
		}
	}

	return cfg, nil
}

// loadData 将原始数据按格式解析进 koanf 实例。
func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = kyaml.Parser()
	case FormatJSON:
		parser = kjson.Parser()
	default:
		return ErrUnsupportedFormat
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// isValidFormat 判断格式是否受支持。
func isValidFormat(format Format) bool {
	return format == FormatYAML || format == FormatJSON
}
