package asciicast

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load はcastファイルを読み込んでCastを構築します。
// Windowsの端末が書き出すBOM付きのファイル（UTF-8/UTF-16）も
// そのまま読み込めます
func Load(path string) (*Cast, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	defer f.Close()

	// BOMがあればそれに従ってデコードし、なければUTF-8として読む
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return NewParser().Parse(transform.NewReader(f, decoder))
}

// Save はCastをcastファイルとして保存します。
// 出力先ディレクトリが存在しない場合は作成します。
// 再生側が受け付けないため、BOMは書き込みません
func Save(path string, c *Cast) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateFile, err)
	}
	defer f.Close()

	if err := NewSerializer().Write(f, c); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	return nil
}
