package service

import (
	"Couture/dao"
	"Couture/dao/cache"
	"Couture/models"
	"Couture/pkg/errorx"
	"Couture/pkg/log"
	"Couture/pkg/snowflake"
	"Couture/types"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

// ObjectStorage 对象存储, 生产环境为阿里云 OSS
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

var _ IImageService = (*ImageService)(nil)

type IImageService interface {
	Upload(ctx context.Context, productID uint64, header *multipart.FileHeader) (*types.UploadImageResp, error)
	Delete(ctx context.Context, productID uint64, imageID int64) error
}

type ImageService struct {
	ProductRepo *dao.Product
	Storage     ObjectStorage
	Cache       *cache.ProductCache
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Upload 校验格式与尺寸后上传到对象存储, 并追加到商品图片末尾
func (s *ImageService) Upload(ctx context.Context, productID uint64, header *multipart.FileHeader) (*types.UploadImageResp, error) {
	if header == nil {
		return nil, errorx.Invalid("Missing image")
	}
	// header.Size 不可信, 但可做第一道拦截
	if header.Size <= 0 || header.Size > types.MaxImageSize {
		return nil, errorx.Invalid("Image size must be between 1 byte and 10MB")
	}
	if _, err := s.ProductRepo.FindById(ctx, productID); err != nil {
		return nil, dao.NotFound(err, "Product not found")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 1) MIME 校验 (读取前 512 bytes)
	head := make([]byte, 512)
	n, _ := io.ReadFull(f, head)
	contentType := http.DetectContentType(head[:n])
	if !allowedMime[contentType] {
		return nil, errorx.Invalid("Unsupported image type: " + contentType)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// 2) 读取尺寸 + 格式 (不解码全图)
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, errorx.Wrap(errorx.Validation, err, "Invalid image")
	}
	ext, ok := types.AllowedImageTypes[strings.ToLower(format)]
	if !ok {
		return nil, errorx.Invalid("Unsupported image format: " + format)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// 3) 生成 ID / objectKey
	imageID := snowflake.GenID()
	objectKey := fmt.Sprintf("products/%d/%s/%d%s", productID, time.Now().Format("2006/01/02"), imageID, ext)

	// 4) 上传 (限制读取长度)
	if err := s.Storage.Put(ctx, objectKey, io.LimitReader(f, types.MaxImageSize+1), contentType); err != nil {
		return nil, err
	}

	order, err := s.ProductRepo.NextImageOrder(ctx, productID)
	if err != nil {
		return nil, err
	}
	img := &models.ProductImage{
		ID:        imageID,
		ProductID: productID,
		URL:       s.Storage.URL(objectKey),
		ObjectKey: objectKey,
		SortOrder: order,
		Width:     cfg.Width,
		Height:    cfg.Height,
	}
	if err := s.ProductRepo.CreateImage(ctx, img); err != nil {
		if derr := s.Storage.Delete(ctx, objectKey); derr != nil {
			log.L.Warn("rollback uploaded object", zap.String("key", objectKey), zap.Error(derr))
		}
		return nil, err
	}
	evictProducts(ctx, s.Cache, productID)

	return &types.UploadImageResp{
		ImageID:   imageID,
		ProductID: productID,
		Url:       img.URL,
		Width:     cfg.Width,
		Height:    cfg.Height,
		SortOrder: order,
	}, nil
}

func (s *ImageService) Delete(ctx context.Context, productID uint64, imageID int64) error {
	img, err := s.ProductRepo.FindImage(ctx, productID, imageID)
	if err != nil {
		return err
	}
	if err := s.ProductRepo.DeleteImage(ctx, img.ID); err != nil {
		return err
	}
	evictProducts(ctx, s.Cache, productID)
	if err := s.Storage.Delete(ctx, img.ObjectKey); err != nil {
		log.L.Warn("delete product image object", zap.String("key", img.ObjectKey), zap.Error(err))
	}
	return nil
}
