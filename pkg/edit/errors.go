package edit

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeStart は開始位置が負の場合のエラー
	ErrNegativeStart = errors.New("start must not be negative")

	// ErrStartAfterEnd は開始位置が終了位置より後の場合のエラー
	ErrStartAfterEnd = errors.New("start must not be greater than end")

	// ErrNegativePosition は挿入位置が負の場合のエラー
	ErrNegativePosition = errors.New("position must not be negative")

	// ErrNegativeTime は操作の結果タイムスタンプが負になる場合のエラー
	ErrNegativeTime = errors.New("operation would produce a negative timestamp")

	// ErrOutOfRange は挿入位置がドキュメントの長さを超える場合のエラー
	ErrOutOfRange = errors.New("position exceeds cast duration")

	// ErrBadFactor は速度係数が正でない場合のエラー
	ErrBadFactor = errors.New("speed factor must be positive")

	// ErrNilCast は対象のCastがnilの場合のエラー
	ErrNilCast = errors.New("cast must not be nil")
)

// RangeError は編集操作のパラメータがドキュメントの
// タイムラインと矛盾している場合のエラー
type RangeError struct {
	Op  string // 操作名
	Err error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *RangeError) Unwrap() error {
	return e.Err
}

// newRangeError は新しいRangeErrorを作成します
func newRangeError(op string, err error) *RangeError {
	return &RangeError{Op: op, Err: err}
}

// PipelineError はパイプライン実行中に失敗した操作の
// インデックスと操作名を保持するエラー
type PipelineError struct {
	Index int    // 失敗した操作のインデックス（0始まり）
	Op    string // 操作名
	Err   error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *PipelineError) Error() string {
	return fmt.Sprintf("operation %d (%s): %v", e.Index, e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *PipelineError) Unwrap() error {
	return e.Err
}
