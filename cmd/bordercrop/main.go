package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/xshoji/go-img-bordercut/config"
	"github.com/xshoji/go-img-bordercut/processor"
	"github.com/xshoji/go-img-bordercut/utils"
)

// アプリケーション設定とオプション
var (
	// コマンドオプション表示に関する設定
	commandDescription      = "Crops the area below a blue/white/blue border from every image in a directory."
	commandOptionFieldWidth = "12" // フィールド幅の推奨値: 一般的に12、ブール値のみの場合は5

	// 環境変数で上書きされたデフォルト設定
	defaultConfig = config.NewDefaultConfig().LoadFromEnv()

	// 入出力
	optionSource      = flag.String("s", defaultConfig.SourceDir, "Source directory containing the images")
	optionDestination = flag.String("o", defaultConfig.DestDir, "Destination directory (created if missing)")

	// 境界の色と許容差
	optionTargetRed   = flag.Int("tr", int(defaultConfig.TargetColor.R), "Red component of the border color (0-255)")
	optionTargetGreen = flag.Int("tg", int(defaultConfig.TargetColor.G), "Green component of the border color (0-255)")
	optionTargetBlue  = flag.Int("tb", int(defaultConfig.TargetColor.B), "Blue component of the border color (0-255)")
	optionTolerance   = flag.Int("t", defaultConfig.Tolerance, "Per-channel color tolerance (0-255)")

	// 出力設定
	optionJPEGQuality = flag.Int("q", defaultConfig.JPEGQuality, "JPEG quality for cropped images (1-100)")
	optionDryRun      = flag.Bool("n", defaultConfig.DryRun, "Dry run: detect borders without writing files")
)

func init() {
	// ヘルプメッセージのカスタマイズ
	utils.CustomizeHelpMessage(commandDescription, commandOptionFieldWidth)
}

// main エントリポイント
func main() {
	// コマンドライン引数の解析
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// 設定情報の表示
	utils.PrintFlagInfo()

	// 設定オブジェクトの作成
	cfg := createAppConfig()

	fmt.Printf("Starting image processing...\n")
	fmt.Printf("Source directory: %s\n", cfg.SourceDir)
	fmt.Printf("Destination directory: %s\n", cfg.DestDir)
	fmt.Printf("Target color: RGB(%d, %d, %d) (#%02x%02x%02x)\n\n",
		cfg.TargetColor.R, cfg.TargetColor.G, cfg.TargetColor.B,
		cfg.TargetColor.R, cfg.TargetColor.G, cfg.TargetColor.B)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// 画像処理の実行
	report, err := processor.New(cfg, nil, logger).Run(ctx, cfg.SourceDir, cfg.DestDir)
	if err != nil {
		if errors.Is(err, processor.ErrSourceNotFound) {
			fmt.Printf("[ERROR] The directory '%s' does not exist!\n", cfg.SourceDir)
		} else {
			fmt.Printf("[ERROR] %v\n", err)
		}
		os.Exit(1)
	}

	printSummary(cfg, report)
}

// createAppConfig アプリケーション設定オブジェクトを作成
func createAppConfig() *config.AppConfig {
	cfg := *defaultConfig

	// 色と許容差の範囲を制限
	r := utils.Clamp(*optionTargetRed, 0, 255)
	g := utils.Clamp(*optionTargetGreen, 0, 255)
	b := utils.Clamp(*optionTargetBlue, 0, 255)

	cfg.SourceDir = *optionSource
	cfg.DestDir = *optionDestination
	cfg.TargetColor = color.RGBA{uint8(r), uint8(g), uint8(b), 255}
	cfg.Tolerance = utils.Clamp(*optionTolerance, 0, 255)
	cfg.JPEGQuality = utils.Clamp(*optionJPEGQuality, 1, 100)
	cfg.DryRun = *optionDryRun
	return &cfg
}

// printSummary 処理結果の一覧と完了メッセージを表示
func printSummary(cfg *config.AppConfig, report *processor.Report) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 50))
	if report.DryRun {
		fmt.Printf("Dry run completed! No files were written.\n")
	} else {
		fmt.Printf("Processing completed!\n")
		fmt.Printf("All images were saved to: %s\n", cfg.DestDir)
	}
	fmt.Printf("  cropped: %d, kept original: %d, copied after error: %d, failed: %d\n",
		report.Count(processor.OutcomeCropped),
		report.Count(processor.OutcomeCopied),
		report.Count(processor.OutcomeCopiedAfterError),
		report.Count(processor.OutcomeFailed))
	for _, name := range report.Failed() {
		fmt.Printf("  [FAILED] %s\n", name)
	}
}
