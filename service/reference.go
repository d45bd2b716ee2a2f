package service

import (
	"Couture/config"
	"Couture/pkg/snowflake"
	"Couture/pkg/utils"
	"fmt"
	"strconv"
	"strings"
)

// 参考编号所属实体
const (
	EntityUser    = "user"
	EntityProduct = "product"
	EntityVariant = "variant"
	EntityOrder   = "order"
)

var referencePrefix = map[string]string{
	EntityUser:    "USR",
	EntityProduct: "PRD",
	EntityVariant: "VAR",
	EntityOrder:   "ORD",
}

var _ IReferenceGenerator = (*HashidsReference)(nil)
var _ IReferenceGenerator = (*SnowflakeReference)(nil)

// IReferenceGenerator 为新建实体生成面向人的参考编号
type IReferenceGenerator interface {
	Next(entity string, id uint64) (string, error)
}

// HashidsReference 由主键编码得到, 同一 salt 下稳定且可逆
type HashidsReference struct {
	Salt string
}

func (h *HashidsReference) Next(entity string, id uint64) (string, error) {
	prefix, ok := referencePrefix[entity]
	if !ok {
		return "", fmt.Errorf("unknown reference entity %q", entity)
	}
	code, err := utils.GenHashID(h.Salt+":"+entity, int64(id))
	if err != nil {
		return "", err
	}
	return prefix + "-" + code, nil
}

// SnowflakeReference 与主键无关的时间有序编号
type SnowflakeReference struct{}

func (SnowflakeReference) Next(entity string, _ uint64) (string, error) {
	prefix, ok := referencePrefix[entity]
	if !ok {
		return "", fmt.Errorf("unknown reference entity %q", entity)
	}
	return prefix + "-" + strings.ToUpper(strconv.FormatInt(snowflake.GenID(), 36)), nil
}

func NewReferenceGenerator(conf *config.Config) (IReferenceGenerator, error) {
	switch conf.Reference.Strategy {
	case "", config.ReferenceHashids:
		return &HashidsReference{Salt: conf.Reference.Salt}, nil
	case config.ReferenceSnowflake:
		if err := snowflake.Init(conf.Reference.Node); err != nil {
			return nil, err
		}
		return SnowflakeReference{}, nil
	default:
		return nil, fmt.Errorf("unknown reference strategy %q", conf.Reference.Strategy)
	}
}
