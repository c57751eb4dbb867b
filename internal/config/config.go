// Package config defines the reporting tool's configuration and how it is loaded.
package config

import "time"

// Report formats.
const (
	FormatHTML = "html"
	FormatPNG  = "png"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// Format selects the exported report format: html or png.
	Format string `koanf:"format" validate:"oneof=html png"`

	// TitlePrefix starts every chart title.
	TitlePrefix string `koanf:"title_prefix" validate:"required"`

	// FooterText is embedded below exported charts.
	FooterText string `koanf:"footer_text"`

	// PNGWidth, PNGHeight and PNGScale size rasterized charts.
	PNGWidth  int     `koanf:"png_width" validate:"gt=0"`
	PNGHeight int     `koanf:"png_height" validate:"gt=0"`
	PNGScale  float64 `koanf:"png_scale" validate:"gt=0"`

	// RenderTimeout bounds the rasterization of a single chart.
	RenderTimeout time.Duration `koanf:"render_timeout" validate:"gt=0"`

	// ChromePath overrides the browser executable used for png output.
	ChromePath string `koanf:"chrome_path"`

	// AssetsHost is where report pages load the charting script from.
	AssetsHost string `koanf:"assets_host" validate:"omitempty,url"`

	// MetricsFile, when set, receives a Prometheus text dump after each run.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Format:        FormatHTML,
		TitlePrefix:   "Személyes és társas kompetencia",
		FooterText:    "Készítette: Sulyok István Ált. Iskola és AMI 2026. Pálfi Gergő",
		PNGWidth:      1400,
		PNGHeight:     950,
		PNGScale:      2,
		RenderTimeout: 30 * time.Second,
		AssetsHost:    "https://go-echarts.github.io/go-echarts-assets/assets/",
	}
}
