package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xioustic/bf-naive/bfvm"
)

func TestSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bfs")

	vm := bfvm.New(bfvm.Options{})
	vm.AddInstructions("+++++[")
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	if err := saveSnapshot(vm, path); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %v", entries)
	}

	buf := new(bytes.Buffer)
	restored := bfvm.New(bfvm.Options{
		Output: buf,
	})
	if err := loadSnapshot(restored, path); err != nil {
		t.Fatal(err)
	}
	restored.AddInstructions(">++<-]>.")
	if err := restored.Run(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{10}) {
		t.Fatalf("got %v", buf.Bytes())
	}

	if err := loadSnapshot(restored, path+".missing"); err == nil {
		t.Fatal("should error")
	}
}
