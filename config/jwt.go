package config

import "time"

type Jwt struct {
	Secret string        `json:"secret" yaml:"secret"`
	Header string        `json:"header" yaml:"header"` // 令牌所在请求头
	Expire time.Duration `json:"expire" yaml:"expire"`
}

func (j *Jwt) defaults() {
	if j.Header == "" {
		j.Header = "x-auth-token"
	}
	if j.Expire == 0 {
		j.Expire = 24 * time.Hour
	}
}
