// processor パッケージはディレクトリ内の画像を一括で境界検出・切り抜きする
package processor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xshoji/go-img-bordercut/config"
	"github.com/xshoji/go-img-bordercut/imageutil"
)

// ErrSourceNotFound は入力ディレクトリが存在しない場合のエラー
var ErrSourceNotFound = errors.New("source directory does not exist")

// CutFinder は画像から切り取り位置を求める
type CutFinder interface {
	FindCutPosition(img image.Image) (int, bool)
}

// Processor は画像を1枚ずつ順番に処理する
type Processor struct {
	cfg    *config.AppConfig
	finder CutFinder
	logger *slog.Logger
}

// New 設定をもとに新しいProcessorを作成
// finder が nil の場合は設定の対象色と許容差でBorderDetectorを使う
func New(cfg *config.AppConfig, finder CutFinder, logger *slog.Logger) *Processor {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if finder == nil {
		finder = imageutil.NewBorderDetector(cfg.TargetColor, cfg.Tolerance)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:    cfg,
		finder: finder,
		logger: logger,
	}
}

// Run は srcDir の画像をすべて処理し、結果を dstDir に同じファイル名で書き出す
// 1ファイルの失敗で処理は止めない。ctx はファイル間でのみ確認する
func (p *Processor) Run(ctx context.Context, srcDir, dstDir string) (*Report, error) {
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, srcDir)
	}

	if !p.cfg.DryRun {
		if err := os.MkdirAll(dstDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create destination directory: %w", err)
		}
	}

	files, err := ListImages(srcDir, p.cfg.Extensions)
	if err != nil {
		return nil, err
	}
	p.logger.Info("found files to process", "count", len(files), "source", srcDir, "destination", dstDir)

	report := &Report{DryRun: p.cfg.DryRun}
	startTime := time.Now()

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("processing interrupted", "processed", len(report.Results), "total", len(files))
			return report, err
		}
		report.Results = append(report.Results, p.processFile(
			filepath.Join(srcDir, name),
			filepath.Join(dstDir, name),
			name,
		))
	}

	p.logger.Info("processing completed",
		"cropped", report.Count(OutcomeCropped),
		"copied", report.Count(OutcomeCopied),
		"copied_after_error", report.Count(OutcomeCopiedAfterError),
		"failed", report.Count(OutcomeFailed),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)
	return report, nil
}

// processFile は1ファイルを処理し、失敗時は元ファイルのコピーを試みる
func (p *Processor) processFile(srcPath, dstPath, name string) FileResult {
	res := FileResult{Name: name}

	outcome, cut, err := p.cropOrCopy(srcPath, dstPath, name)
	res.Cut = cut
	if err == nil {
		res.Outcome = outcome
		return res
	}

	p.logger.Error("failed to process file", "file", name, "error", err)
	res.Err = err

	if p.cfg.DryRun {
		res.Outcome = OutcomeCopiedAfterError
		return res
	}

	if copyErr := copyFile(srcPath, dstPath); copyErr != nil {
		p.logger.Error("fallback copy failed", "file", name, "error", copyErr)
		res.Outcome = OutcomeFailed
		res.Err = errors.Join(err, copyErr)
		return res
	}

	p.logger.Info("file copied despite error", "file", name)
	res.Outcome = OutcomeCopiedAfterError
	return res
}

// cropOrCopy は境界が見つかれば切り抜いて保存し、見つからなければ元ファイルをコピーする
func (p *Processor) cropOrCopy(srcPath, dstPath, name string) (Outcome, int, error) {
	img, err := imageutil.LoadImage(srcPath)
	if err != nil {
		return OutcomeFailed, 0, err
	}

	bounds := img.Bounds()
	p.logger.Info("processing", "file", name, "width", bounds.Dx(), "height", bounds.Dy())

	cut, found := p.finder.FindCutPosition(img)
	if !found || cut <= 0 {
		if !p.cfg.DryRun {
			if err := copyFile(srcPath, dstPath); err != nil {
				return OutcomeFailed, 0, err
			}
		}
		p.logger.Info("image kept original (no border detected)", "file", name)
		return OutcomeCopied, 0, nil
	}

	p.logger.Info("border found", "file", name, "cut", cut)

	cropped := imageutil.CropAbove(img, cut)
	if !p.cfg.DryRun {
		if err := imageutil.SaveImage(cropped, dstPath, p.cfg.JPEGQuality); err != nil {
			return OutcomeFailed, cut, err
		}
	}

	cb := cropped.Bounds()
	p.logger.Info("image cropped", "file", name, "width", cb.Dx(), "height", cb.Dy())
	return OutcomeCropped, cut, nil
}
