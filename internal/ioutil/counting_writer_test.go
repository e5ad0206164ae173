package ioutil_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc6266/internal/ioutil"
)

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errtrace.Wrap(errors.New("write failed"))
}

func TestCountingWriter_Write(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	n, err := cw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes written, got %d", n)
	}

	n, err = cw.WriteString(" world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 {
		t.Errorf("expected 6 bytes written, got %d", n)
	}
	if cw.Count() != 11 {
		t.Errorf("expected count 11, got %d", cw.Count())
	}

	if buf.String() != "hello world" {
		t.Errorf("expected 'hello world', got %q", buf.String())
	}
}

func TestCountingWriter_Fprint(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	cw.Fprint("attachment", "; ", "filename=x") //nolint:errcheck
	num, err := cw.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := len("attachment; filename=x"); num != want {
		t.Errorf("expected count %d, got %d", want, num)
	}
	if buf.String() != "attachment; filename=x" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestCountingWriter_Call(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	cw.Call(func(w io.Writer) (int, error) {
		return w.Write([]byte("part"))
	})
	num, err := cw.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 4 {
		t.Errorf("expected count 4, got %d", num)
	}
}

func TestCountingWriter_StickyError(t *testing.T) {
	t.Parallel()

	cw := ioutil.NewCountingWriter(errorWriter{})

	if _, err := cw.Write([]byte("x")); err == nil {
		t.Fatal("expected error")
	}
	if _, err := cw.WriteString("y"); err == nil {
		t.Fatal("expected the error to stick")
	}
	cw.Call(func(io.Writer) (int, error) { t.Fatal("Call must not run after error"); return 0, nil })
	if _, err := cw.Result(); err == nil {
		t.Fatal("expected error from Result")
	}
}

func TestCountingWriter_Pool(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	cw.Fprint("data") //nolint:errcheck
	if cw.Count() != 4 {
		t.Errorf("expected count 4, got %d", cw.Count())
	}
	ioutil.FreeCountingWriter(cw)

	cw2 := ioutil.GetCountingWriter(&bytes.Buffer{})
	defer ioutil.FreeCountingWriter(cw2)
	if cw2.Count() != 0 {
		t.Errorf("pooled writer not reset, count = %d", cw2.Count())
	}
}
