package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrDirNotFound はリネーム対象のディレクトリが存在しない場合のエラー
var ErrDirNotFound = errors.New("directory not found")

// Status は1件のリネーム結果
type Status int

const (
	// StatusRenamed リネームした
	StatusRenamed Status = iota
	// StatusMissing 旧ファイルが存在しないためスキップした
	StatusMissing
	// StatusConflict 新ファイル名のファイルが既にあるためスキップした
	StatusConflict
	// StatusPlanned ドライランのため実行していない
	StatusPlanned
)

func (s Status) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusMissing:
		return "missing"
	case StatusConflict:
		return "conflict"
	case StatusPlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// Options はリネームの動作を指定する
type Options struct {
	Overwrite bool // 新ファイル名のファイルが既にあっても上書きする
	DryRun    bool // 実際にはリネームしない
}

// Result は対応表1件分の結果
type Result struct {
	Pair
	Status Status
}

// Report はリネーム全体の結果
type Report struct {
	Results []Result
	DryRun  bool
}

// Count は指定した結果の件数を返す
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Apply は dir 内のファイルを対応表の順にリネームする
// 旧ファイルがない項目と、新ファイル名が既に使われている項目はスキップして続行する
// それ以外のリネーム失敗はその時点で中断し、途中までの結果とともにエラーを返す
func Apply(dir string, m Mapping, opts Options, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	report := &Report{DryRun: opts.DryRun}
	for _, p := range m {
		status, err := applyOne(dir, p, opts)
		if err != nil {
			logger.Error("rename failed", "from", p.Old, "to", p.New, "error", err)
			return report, err
		}
		report.Results = append(report.Results, Result{Pair: p, Status: status})

		switch status {
		case StatusRenamed:
			logger.Info("renamed", "from", p.Old, "to", p.New)
		case StatusPlanned:
			logger.Info("would rename", "from", p.Old, "to", p.New)
		case StatusMissing:
			logger.Warn("file not found", "name", p.Old)
		case StatusConflict:
			logger.Warn("target already exists, skipped", "from", p.Old, "to", p.New)
		}
	}

	logger.Info("rename completed",
		"renamed", report.Count(StatusRenamed),
		"missing", report.Count(StatusMissing),
		"conflict", report.Count(StatusConflict),
	)
	return report, nil
}

func applyOne(dir string, p Pair, opts Options) (Status, error) {
	oldPath := filepath.Join(dir, p.Old)
	newPath := filepath.Join(dir, p.New)

	oldInfo, err := os.Lstat(oldPath)
	if errors.Is(err, fs.ErrNotExist) {
		return StatusMissing, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", p.Old, err)
	}

	if !opts.Overwrite {
		// 大文字小文字を区別しないファイルシステムでは同じファイルを指すことがある
		if newInfo, err := os.Lstat(newPath); err == nil && !os.SameFile(oldInfo, newInfo) {
			return StatusConflict, nil
		}
	}

	if opts.DryRun {
		return StatusPlanned, nil
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return 0, fmt.Errorf("failed to rename %s to %s: %w", p.Old, p.New, err)
	}
	return StatusRenamed, nil
}
