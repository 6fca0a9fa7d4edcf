package imageutil

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality は品質が指定されなかった場合のJPEG品質
const DefaultJPEGQuality = 90

// IsSupportedImage はファイル名の拡張子が対象拡張子のいずれかに一致するかを返す
// 大文字・小文字は区別しない
func IsSupportedImage(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// LoadImage 指定されたパスから画像を読み込む
// 形式は拡張子ではなくファイルの内容から判定する
func LoadImage(filePath string) (image.Image, error) {
	img, err := imaging.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// SaveImage 画像をファイルに保存する
// 形式は出力パスの拡張子で決まる
func SaveImage(img image.Image, outputPath string, jpegQuality int) error {
	if _, err := imaging.FormatFromFilename(outputPath); err != nil {
		return fmt.Errorf("unsupported output format: %s", filepath.Ext(outputPath))
	}
	if jpegQuality <= 0 {
		jpegQuality = DefaultJPEGQuality
	}

	if err := imaging.Save(img, outputPath, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// CropAbove は画像上端から cut 行分を残した画像を返す
// cut は画像上端からの相対行
func CropAbove(img image.Image, cut int) image.Image {
	b := img.Bounds()
	return imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+cut))
}
