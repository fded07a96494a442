package asciicast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Serializer はCastを行区切りのcastストリームに変換します
type Serializer struct{}

// NewSerializer は新しいSerializerを作成します
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Write はCastを行区切りのテキストとして書き出します。
// ヘッダ行を最初に、続けてイベントを1行ずつ [time, type, data] 形式で
// 出力します。タイムスタンプは解析時の値を損なわない最短表現で
// 出力されます。Castが不変条件を満たさない場合のみ失敗します
func (s *Serializer) Write(w io.Writer, c *Cast) error {
	if err := c.Validate(); err != nil {
		return err
	}

	// 端末出力にはエスケープシーケンスが含まれるためHTMLエスケープは行わない
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(c.Header); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}
	for _, e := range c.Events {
		if err := enc.Encode([3]any{e.Time, e.Type, e.Data}); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

// Marshal はCastを行区切りテキストのバイト列として返します
func (s *Serializer) Marshal(c *Cast) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
