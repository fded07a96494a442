package asciicast

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	cast := &Cast{
		Header: Header{Version: 2, Width: 80, Height: 24, Title: "demo"},
		Events: []Event{
			{Time: 0.04, Type: Output, Data: "hello"},
			{Time: 1, Type: Resize, Data: "100x30"},
			{Time: 2.5, Type: Marker, Data: "done"},
		},
	}

	path := filepath.Join(t.TempDir(), "out", "demo.cast")
	if err := Save(path, cast); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Header, cast.Header) {
		t.Errorf("header mismatch: got %+v, want %+v", loaded.Header, cast.Header)
	}
	if len(loaded.Events) != len(cast.Events) {
		t.Fatalf("expected %d events, got %d", len(cast.Events), len(loaded.Events))
	}
	for i, e := range loaded.Events {
		if e != cast.Events[i] {
			t.Errorf("events[%d] = %+v, want %+v", i, e, cast.Events[i])
		}
	}
}

func TestLoad_UTF8BOM(t *testing.T) {
	content := testHeader + "\n" + `[0,"o","a"]` + "\n"
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(content)...)

	path := filepath.Join(t.TempDir(), "bom.cast")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cast, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cast.Events) != 1 || cast.Events[0].Data != "a" {
		t.Errorf("unexpected events: %+v", cast.Events)
	}
}

func TestLoad_UTF16LE(t *testing.T) {
	// Windowsの端末がリダイレクトで書き出す形式
	content := testHeader + "\n" + `[0,"o","a"]` + "\n"
	data := []byte{0xFF, 0xFE} // UTF-16LE BOM
	for _, r := range content {
		data = append(data, byte(r), 0x00)
	}

	path := filepath.Join(t.TempDir(), "utf16.cast")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cast, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cast.Events) != 1 || cast.Events[0].Data != "a" {
		t.Errorf("unexpected events: %+v", cast.Events)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cast"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrOpenFile) {
		t.Errorf("error = %v, want %v", err, ErrOpenFile)
	}
}

func TestSave_InvalidCast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.cast")
	err := Save(path, &Cast{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("error = %v, want %v", err, ErrInvalidHeader)
	}
}
