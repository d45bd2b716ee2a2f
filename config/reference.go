package config

const (
	ReferenceHashids   = "hashids"
	ReferenceSnowflake = "snowflake"
)

// Reference 参考编号生成策略
type Reference struct {
	Strategy string `json:"strategy" yaml:"strategy"`
	Salt     string `json:"salt" yaml:"salt"`
	Node     int64  `json:"node" yaml:"node"`
}

func (r *Reference) defaults() {
	if r.Strategy == "" {
		r.Strategy = ReferenceHashids
	}
	if r.Salt == "" {
		r.Salt = "life-couture"
	}
	if r.Node == 0 {
		r.Node = 1
	}
}
