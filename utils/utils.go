package utils

import (
	"os"
	"strconv"
	"strings"
)

// Clamp は値を指定範囲内に制限する
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// AbsInt は整数の絶対値を返す
func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// GetEnvOrDefault は環境変数の値を取得し、設定されていない場合はデフォルト値を返す
func GetEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvIntOrDefault は環境変数を整数として取得する
// 未設定または整数として解釈できない場合はデフォルト値を返す
func GetEnvIntOrDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return i
}

// GetEnvBoolOrDefault は環境変数を真偽値として取得する（"true" または "1" で真）
func GetEnvBoolOrDefault(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	return value == "true" || value == "1"
}
