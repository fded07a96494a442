// Package compose はプロンプト表示やタイプ入力の演出など、
// castを合成生成するヘルパーを提供します。
// 生成されるCastのヘッダは空で、Splice/Appendで既存の録画に
// 組み込んで使うことを想定しています
package compose

import (
	"fmt"
	"math/rand"

	"github.com/shiroemons/go-castedit/pkg/asciicast"
)

// FromEvent は1つのイベントだけを持つCastを作成します。
// イベントはdelay秒後に表示されます
func FromEvent(e asciicast.Event, delay float64) *asciicast.Cast {
	e.Time = delay
	return &asciicast.Cast{Events: []asciicast.Event{e}}
}

// Wait は指定した秒数だけ待つCastを作成します
func Wait(seconds float64) *asciicast.Cast {
	return FromEvent(asciicast.Event{Type: asciicast.Output, Data: ""}, seconds)
}

// End は指定した秒数の後に終端フレームを表示するCastを作成します
func End(seconds float64) *asciicast.Cast {
	return FromEvent(asciicast.Event{Type: asciicast.Output, Data: "\r\r\n"}, seconds)
}

// PromptOptions はPromptの設定オプション
type PromptOptions struct {
	Dir       string  // カレントディレクトリ表示（既定 "~"）
	Prompt    string  // プロンプト記号（既定 " $ "）
	Env       string  // 先頭に "(env) " として表示する環境名
	UserColor string  // user@machine の色（既定 Red）
	DirColor  string  // ディレクトリ部分の色（既定 Blue）
	Delay     float64 // 表示までの待ち時間
}

// Prompt は既定のスタイル「user@machine ~ $ 」の
// コマンドラインプロンプトを表示するCastを作成します
func Prompt(user, machine string) *asciicast.Cast {
	return PromptWithOptions(user, machine, PromptOptions{})
}

// PromptWithOptions はオプション付きでプロンプトのCastを作成します
func PromptWithOptions(user, machine string, opts PromptOptions) *asciicast.Cast {
	if opts.Dir == "" {
		opts.Dir = "~"
	}
	if opts.Prompt == "" {
		opts.Prompt = " $ "
	}
	if opts.UserColor == "" {
		opts.UserColor = Red
	}
	if opts.DirColor == "" {
		opts.DirColor = Blue
	}

	text := fmt.Sprintf("%s%s@%s%s %s%s%s%s",
		opts.UserColor, user, machine, Reset,
		opts.DirColor, opts.Dir, opts.Prompt, Reset)
	if opts.Env != "" {
		text = fmt.Sprintf("(%s) %s", opts.Env, text)
	}
	return FromEvent(asciicast.Event{Type: asciicast.Output, Data: text}, opts.Delay)
}

// DefaultTypeSpeed はTypeTextの既定の入力速度（秒/文字）
const DefaultTypeSpeed = 0.04

// TypeOptions はTypeTextの設定オプション
type TypeOptions struct {
	Speed  float64             // 1文字あたりの秒数（0以下は既定値）
	Jitter float64             // 速度の揺らぎ幅（0は既定のSpeedの30%、負の値で揺らぎなし）
	Stream asciicast.EventType // 出力先ストリーム（既定 Output）
	Rand   *rand.Rand          // 乱数源（nilの場合は共有の乱数源）
}

// TypeText は文字列を1文字ずつタイプするCastを作成します。
// 各文字の間隔には揺らぎが加わります
func TypeText(text string) *asciicast.Cast {
	return TypeTextWithOptions(text, TypeOptions{})
}

// TypeTextWithOptions はオプション付きでタイプ入力のCastを作成します
func TypeTextWithOptions(text string, opts TypeOptions) *asciicast.Cast {
	if opts.Speed <= 0 {
		opts.Speed = DefaultTypeSpeed
	}
	if opts.Jitter == 0 {
		opts.Jitter = 0.3 * opts.Speed
	} else if opts.Jitter < 0 {
		opts.Jitter = 0
	}
	if opts.Stream == "" {
		opts.Stream = asciicast.Output
	}

	cast := &asciicast.Cast{}
	elapsed := 0.0
	for _, r := range text {
		delta := opts.Speed + uniform(opts.Rand, opts.Jitter)
		if delta < 0 {
			// タイムスタンプの昇順を保つ
			delta = 0
		}
		elapsed += delta
		cast.Events = append(cast.Events, asciicast.Event{
			Time: elapsed,
			Type: opts.Stream,
			Data: string(r),
		})
	}
	return cast
}

// uniform は [-jitter, jitter) の一様乱数を返します
func uniform(r *rand.Rand, jitter float64) float64 {
	if jitter == 0 {
		return 0
	}
	f := rand.Float64
	if r != nil {
		f = r.Float64
	}
	return f()*2*jitter - jitter
}
