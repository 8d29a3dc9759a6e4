package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pthm/elemental"
)

// settings configure the Builder used by render. They come from an
// optional settings file and ELEMENTAL_* variables such as
// ELEMENTAL_ICON_CLASS_PREFIX or ELEMENTAL_ROUTES_BASE.
type settings struct {
	Icon struct {
		Element     string `mapstructure:"element"`
		ClassPrefix string `mapstructure:"class_prefix"`
	} `mapstructure:"icon"`
	Routes struct {
		Base   string            `mapstructure:"base"`
		Named  map[string]string `mapstructure:"named"`
		Strict bool              `mapstructure:"strict"`
	} `mapstructure:"routes"`
	Format struct {
		Date     string `mapstructure:"date"`
		DateTime string `mapstructure:"datetime"`
		Currency string `mapstructure:"currency"`
	} `mapstructure:"format"`
	SigningKey string `mapstructure:"signing_key"`
}

// loadSettings reads path (YAML, JSON or TOML by extension) when given and
// overlays the environment.
func loadSettings(path string) (*settings, error) {
	v := viper.New()
	v.SetDefault("icon.element", elemental.DefaultIconElement)
	v.SetDefault("icon.class_prefix", elemental.DefaultIconClassPrefix)
	v.SetDefault("routes.base", "")
	v.SetDefault("routes.strict", false)
	v.SetDefault("format.date", elemental.DefaultDateLayout)
	v.SetDefault("format.datetime", elemental.DefaultDateTimeLayout)
	v.SetDefault("format.currency", "$")
	v.SetDefault("signing_key", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

// builder creates the Builder described by s.
func (s *settings) builder(log logrus.FieldLogger) *elemental.Builder {
	opts := []elemental.Option{
		elemental.WithIcon(s.Icon.Element, s.Icon.ClassPrefix),
		elemental.WithURLGenerator(elemental.Routes{
			Base:   s.Routes.Base,
			Named:  s.Routes.Named,
			Strict: s.Routes.Strict,
		}),
		elemental.WithFormatter(elemental.TextFormat{
			DateLayout:     s.Format.Date,
			DateTimeLayout: s.Format.DateTime,
			CurrencySymbol: s.Format.Currency,
		}),
		elemental.WithLogger(log),
	}
	if s.SigningKey != "" {
		opts = append(opts, elemental.WithSigningKey([]byte(s.SigningKey)))
	}
	return elemental.New(opts...)
}
