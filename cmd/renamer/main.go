package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/xshoji/go-img-bordercut/config"
	"github.com/xshoji/go-img-bordercut/renamer"
	"github.com/xshoji/go-img-bordercut/utils"
)

// アプリケーション設定とオプション
var (
	// コマンドオプション表示に関する設定
	commandDescription      = "Renames numbered files in a directory using a fixed old-name to new-name table."
	commandOptionFieldWidth = "12"

	// 環境変数で上書きされたデフォルト設定
	defaultConfig = config.NewDefaultConfig().LoadFromEnv()

	optionDir       = flag.String("d", defaultConfig.RenameDir, "Directory containing the files to rename")
	optionFrom      = flag.Int("from", defaultConfig.RenameFrom, "First number of the sequence")
	optionTo        = flag.Int("to", defaultConfig.RenameTo, "Last number of the sequence (inclusive)")
	optionOffset    = flag.Int("offset", defaultConfig.RenameOffset, "Offset added to the number for the new name")
	optionOldFormat = flag.String("old", defaultConfig.RenameOldFormat, "Format of the old file name")
	optionNewFormat = flag.String("new", defaultConfig.RenameNewFormat, "Format of the new file name")
	optionOverwrite = flag.Bool("f", defaultConfig.RenameOverwrite, "Overwrite files that already have the new name")
	optionDryRun    = flag.Bool("n", defaultConfig.DryRun, "Dry run: show what would be renamed")
)

func init() {
	utils.CustomizeHelpMessage(commandDescription, commandOptionFieldWidth)
}

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	mapping, err := renamer.BuildMapping(*optionFrom, *optionTo, *optionOffset, *optionOldFormat, *optionNewFormat)
	if err != nil {
		fmt.Printf("[ERROR] Invalid rename mapping: %v\n", err)
		os.Exit(1)
	}

	opts := renamer.Options{Overwrite: *optionOverwrite, DryRun: *optionDryRun}
	report, err := renamer.Apply(*optionDir, mapping, opts, logger)
	if errors.Is(err, renamer.ErrDirNotFound) {
		// ディレクトリがない場合は通知のみで正常終了
		fmt.Printf("Directory %s not found!\n", *optionDir)
		return
	}
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}

	if report.DryRun {
		fmt.Printf("Dry run completed! %d file(s) would be renamed.\n", report.Count(renamer.StatusPlanned))
		return
	}
	fmt.Printf("Renaming completed! renamed: %d, missing: %d, skipped: %d\n",
		report.Count(renamer.StatusRenamed),
		report.Count(renamer.StatusMissing),
		report.Count(renamer.StatusConflict))
}
