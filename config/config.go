package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Server    *Server    `json:"server" yaml:"server"`
	Log       *Log       `json:"log" yaml:"log"`
	MySQL     *MySQL     `json:"mysql" yaml:"mysql"`
	Redis     *Redis     `json:"redis" yaml:"redis"`
	Jwt       *Jwt       `json:"jwt" yaml:"jwt"`
	Oss       *OssConfig `json:"oss" yaml:"oss"`
	Cors      *Cors      `json:"cors" yaml:"cors"`
	Auth      *Auth      `json:"auth" yaml:"auth"`
	Checkout  *Checkout  `json:"checkout" yaml:"checkout"`
	Reference *Reference `json:"reference" yaml:"reference"`
	Cache     *Cache     `json:"cache" yaml:"cache"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

type Log struct {
	Level string `json:"level" yaml:"level"`
}

// New reads the yaml file and panics when it cannot be used.
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads an optional .env file, then the yaml config, then applies env overrides
// for secrets. Missing sections get defaults.
func Load(filename string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}

	conf.applyDefaults()
	conf.applyEnv()
	return &conf, nil
}

// Default 只包含默认值的配置, 测试与工具命令使用
func Default() *Config {
	conf := &Config{}
	conf.applyDefaults()
	return conf
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Log == nil {
		c.Log = &Log{Level: "info"}
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	c.MySQL.defaults()
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	c.Jwt.defaults()
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.Cors == nil {
		c.Cors = &Cors{}
	}
	if c.Auth == nil {
		c.Auth = &Auth{}
	}
	c.Auth.defaults()
	if c.Checkout == nil {
		c.Checkout = &Checkout{}
	}
	if c.Reference == nil {
		c.Reference = &Reference{}
	}
	c.Reference.defaults()
	if c.Cache == nil {
		c.Cache = &Cache{}
	}
	c.Cache.defaults()
}

func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		c.MySQL.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("OSS_ACCESS_KEY_ID"); v != "" {
		c.Oss.AccessKeyID = v
	}
	if v := os.Getenv("OSS_ACCESS_KEY_SECRET"); v != "" {
		c.Oss.AccessKeySecret = v
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
