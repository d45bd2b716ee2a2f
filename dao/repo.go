package dao

import (
	"Couture/pkg/errorx"
	"context"
	"errors"

	"gorm.io/gorm"
)

type txKey struct{}

// Transaction 在一个数据库事务中执行 fn; 事务经由 ctx 传递给所有 DAO 方法。
// 已处于事务中时直接复用外层事务。
func Transaction(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Conn 返回当前 ctx 中的事务, 没有则返回普通连接
func (r Repo[T]) Conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.Db.WithContext(ctx)
}

func (r Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	if err := r.Conn(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Conn(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAll(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*T, error) {
	items := make([]*T, 0)
	if err := r.Conn(ctx).Scopes(scopes...).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Conn(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	query := r.Conn(ctx).Model(new(T))
	if where != "" {
		query = query.Where(where, args...)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Conn(ctx).Create(item).Error
}

func (r Repo[T]) UpdateById(ctx context.Context, id any, data map[string]any) (int64, error) {
	res := r.Conn(ctx).Model(new(T)).Where("id = ?", id).Updates(data)
	return res.RowsAffected, res.Error
}

func (r Repo[T]) DeleteWhere(ctx context.Context, where string, args ...any) (int64, error) {
	res := r.Conn(ctx).Where(where, args...).Delete(new(T))
	return res.RowsAffected, res.Error
}

// NotFound 把 gorm.ErrRecordNotFound 转成 NotFound 类型错误
func NotFound(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(errorx.NotFound, err, msg)
	}
	return err
}

// Duplicate 把唯一键冲突转成 Conflict 类型错误
func Duplicate(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorx.Wrap(errorx.Conflict, err, msg)
	}
	return err
}
