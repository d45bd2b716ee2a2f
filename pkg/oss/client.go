package oss

import (
	"Couture/config"
	"context"
	"io"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// Bucket 单个 bucket 的读写封装
type Bucket struct {
	Client  *oss.Client
	Name    string
	BaseURL string
}

// NewBucket 配置了 ak/sk 时使用静态凭证, 否则读取 OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET 环境变量
func NewBucket(conf *config.Config) *Bucket {
	o := conf.Oss
	var provider credentials.CredentialsProvider = credentials.NewEnvironmentVariableCredentialsProvider()
	if o.AccessKeyID != "" && o.AccessKeySecret != "" {
		provider = credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.AccessKeySecret)
	}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(provider).
		WithEndpoint(o.Endpoint).
		WithRegion(o.Region)

	baseURL := o.PublicBaseURL
	if baseURL == "" {
		baseURL = "https://" + o.Bucket + "." + o.Endpoint
	}
	return &Bucket{
		Client:  oss.NewClient(cfg),
		Name:    o.Bucket,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Put 上传对象
func (b *Bucket) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := b.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(b.Name),
		Key:         oss.Ptr(key),
		ContentType: oss.Ptr(contentType),
		Body:        body,
	})
	return err
}

// Delete 删除对象
func (b *Bucket) Delete(ctx context.Context, key string) error {
	_, err := b.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(b.Name),
		Key:    oss.Ptr(key),
	})
	return err
}

// URL 对象的公开访问地址
func (b *Bucket) URL(key string) string {
	return b.BaseURL + "/" + key
}
