package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xioustic/bf-naive/bfvm"
)

func loadSnapshot(vm *bfvm.VM, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return wrap(err)
	}
	defer f.Close()
	if err := vm.Restore(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// saveSnapshot writes to a temporary file in the same directory and renames it over path.
func saveSnapshot(vm *bfvm.VM, path string) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return wrap(err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	w := bufio.NewWriter(f)
	if err := vm.Snapshot(w); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return wrap(err)
	}
	if err := f.Close(); err != nil {
		return wrap(err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return wrap(err)
	}
	return nil
}
