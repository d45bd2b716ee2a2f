package config

type Cors struct {
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
}
