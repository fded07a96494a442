// Package edit はCastドキュメントに対する編集操作とパイプラインを提供します
package edit

import "github.com/shiroemons/go-castedit/pkg/asciicast"

// Op は1つの編集操作を表します。
// Applyは入力のCastを変更せず、新しいCastを返します。
// 同一タイムスタンプのイベントは操作後も元の相対順序を保ちます
type Op interface {
	// Name は操作名を返します
	Name() string
	// Validate はドキュメントに依存しないパラメータ検証を行います
	Validate() error
	// Apply は操作を適用した新しいCastを返します
	Apply(c *asciicast.Cast) (*asciicast.Cast, error)
}
