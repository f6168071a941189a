package bfvm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotRestore(t *testing.T) {
	vm, _ := newTestVM(t, 64)
	vm.AddInstructions("+++[>++<-]>[<+++>-]<[.")
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	vm.AddInstructions(",")
	if err := vm.Run(); !errors.Is(err, ErrInputNotSupported) {
		t.Fatalf("got %v", err)
	}

	buf := new(bytes.Buffer)
	if err := vm.Snapshot(buf); err != nil {
		t.Fatal(err)
	}

	restored, out := newTestVM(t, 0)
	if err := restored.Restore(buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(vm.State(), restored.State()); diff != "" {
		t.Fatal(diff)
	}
	if restored.Capacity() != 64 {
		t.Fatalf("got %v", restored.Capacity())
	}
	for i := range 64 {
		if vm.Cell(i) != restored.Cell(i) {
			t.Fatalf("cell %d differs", i)
		}
	}

	// the failing input instruction is still current
	restored.AddInstructions("[-]]")
	if err := restored.Run(); !errors.Is(err, ErrInputNotSupported) {
		t.Fatalf("got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("got %v", out.Bytes())
	}
}

func TestSnapshotResume(t *testing.T) {
	vm, _ := newTestVM(t, 8)
	run(t, vm, "++++[")

	buf := new(bytes.Buffer)
	if err := vm.Snapshot(buf); err != nil {
		t.Fatal(err)
	}

	restored, out := newTestVM(t, 0)
	if err := restored.Restore(buf); err != nil {
		t.Fatal(err)
	}
	run(t, restored, ">+<-]>.")
	if !bytes.Equal(out.Bytes(), []byte{4}) {
		t.Fatalf("got %v", out.Bytes())
	}
}

func TestRestoreBadSnapshot(t *testing.T) {
	vm, _ := newTestVM(t, 8)
	run(t, vm, "+>+")
	before := vm.State()

	if err := vm.Restore(bytes.NewReader([]byte("not a snapshot"))); err == nil {
		t.Fatal("should error")
	}
	if diff := cmp.Diff(before, vm.State()); diff != "" {
		t.Fatal(diff)
	}
}

func TestImageValidate(t *testing.T) {
	for _, img := range []image{
		{},
		{Cells: make([]byte, 2), DataPointer: 2},
		{Cells: make([]byte, 2), InstructionPointer: 1},
		{Cells: make([]byte, 2), SeekDepth: -1},
		{Cells: make([]byte, 2), Instructions: []byte("+["), InstructionPointer: 2, JumpStack: []int{0}},
		{Cells: make([]byte, 2), Instructions: []byte("+["), InstructionPointer: 1, JumpStack: []int{1}},
	} {
		if err := img.validate(); err == nil {
			t.Fatalf("should error: %+v", img)
		}
	}
	if err := (image{
		Cells:              make([]byte, 2),
		Instructions:       []byte("+["),
		InstructionPointer: 2,
		JumpStack:          []int{1},
	}).validate(); err != nil {
		t.Fatal(err)
	}
}
