// renamer パッケージは旧ファイル名から新ファイル名への固定の対応表でファイルを一括リネームする
package renamer

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrDuplicateSource 同じ旧ファイル名が対応表に複数ある
	ErrDuplicateSource = errors.New("duplicate source name in mapping")
	// ErrDuplicateTarget 同じ新ファイル名が対応表に複数ある
	ErrDuplicateTarget = errors.New("duplicate target name in mapping")
	// ErrInvalidName ファイル名が空、またはディレクトリを含む
	ErrInvalidName = errors.New("invalid file name in mapping")
	// ErrInvalidRange 連番の範囲が不正
	ErrInvalidRange = errors.New("invalid numbering range")
)

// Pair は旧ファイル名と新ファイル名の組
type Pair struct {
	Old string
	New string
}

// Mapping は順序付きのリネーム対応表
// 適用はこの順序で行われる
type Mapping []Pair

// NewMapping は対応表を検証して作成する
// 旧ファイル名・新ファイル名それぞれの重複は受け付けない
func NewMapping(pairs ...Pair) (Mapping, error) {
	olds := make(map[string]struct{}, len(pairs))
	news := make(map[string]struct{}, len(pairs))

	for _, p := range pairs {
		if !validName(p.Old) || !validName(p.New) {
			return nil, fmt.Errorf("%w: %q -> %q", ErrInvalidName, p.Old, p.New)
		}
		if _, ok := olds[p.Old]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSource, p.Old)
		}
		if _, ok := news[p.New]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTarget, p.New)
		}
		olds[p.Old] = struct{}{}
		news[p.New] = struct{}{}
	}

	m := make(Mapping, len(pairs))
	copy(m, pairs)
	return m, nil
}

// BuildMapping は連番 i (from..to) について oldFormat(i) -> newFormat(i+offset) の対応表を作る
func BuildMapping(from, to, offset int, oldFormat, newFormat string) (Mapping, error) {
	if to < from {
		return nil, fmt.Errorf("%w: %d..%d", ErrInvalidRange, from, to)
	}

	pairs := make([]Pair, 0, to-from+1)
	for i := from; i <= to; i++ {
		pairs = append(pairs, Pair{
			Old: fmt.Sprintf(oldFormat, i),
			New: fmt.Sprintf(newFormat, i+offset),
		})
	}
	return NewMapping(pairs...)
}

// DefaultMapping は parte_001.png..parte_011.png -> questao-79.png..questao-89.png の対応表を返す
func DefaultMapping() Mapping {
	m, err := BuildMapping(1, 11, 78, "parte_%03d.png", "questao-%d.png")
	if err != nil {
		panic(err)
	}
	return m
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}
