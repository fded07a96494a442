package edit

import "github.com/shiroemons/go-castedit/pkg/asciicast"

// Pipeline は編集操作の列を順番に適用します
type Pipeline struct {
	ops []Op
}

// NewPipeline は新しいPipelineを作成します
func NewPipeline(ops ...Op) *Pipeline {
	return &Pipeline{ops: ops}
}

// Add は操作を末尾に追加します
func (p *Pipeline) Add(ops ...Op) {
	p.ops = append(p.ops, ops...)
}

// Len は操作の数を返します
func (p *Pipeline) Len() int {
	return len(p.ops)
}

// Run は全操作を順番に適用し、最終的なCastを返します。
// 実行前に全操作のパラメータを検証し、不正な操作があれば
// 何も適用せずに失敗します。途中で操作が失敗した場合は
// 失敗した操作のインデックスを含むPipelineErrorを返し、
// Castは返しません。入力のCastが変更されることはありません
func (p *Pipeline) Run(c *asciicast.Cast) (*asciicast.Cast, error) {
	for i, op := range p.ops {
		if err := op.Validate(); err != nil {
			return nil, &PipelineError{Index: i, Op: op.Name(), Err: err}
		}
	}

	cur := c
	for i, op := range p.ops {
		next, err := op.Apply(cur)
		if err != nil {
			return nil, &PipelineError{Index: i, Op: op.Name(), Err: err}
		}
		cur = next
	}
	if cur == c {
		// 操作が空でも呼び出し元が自由に変更できるコピーを返す
		cur = c.Clone()
	}
	return cur, nil
}
