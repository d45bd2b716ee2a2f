package types

// UploadImageResp 商品图片上传结果
type UploadImageResp struct {
	ImageID   int64  `json:"imageId,string"` // snowflake, 转字符串防止精度丢失
	ProductID uint64 `json:"productId"`
	Url       string `json:"url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SortOrder int    `json:"sortOrder"`
}

const (
	MaxImageSize = 10 << 20 // 10MB
)

// AllowedImageTypes 允许上传的图片格式 (image.DecodeConfig 返回的 format)
var AllowedImageTypes = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"webp": ".webp",
}
