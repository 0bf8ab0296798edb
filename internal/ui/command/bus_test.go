package command

import (
	"errors"
	"testing"
)

func TestExecuteRoutesThroughInvoker(t *testing.T) {
	var got string
	bus := New(func(cmd string) (any, error) {
		got = cmd
		return []string{"a", "b"}, nil
	})

	out, err := bus.Execute(Request{Label: "Rescan", Command: "list-editions"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "list-editions" {
		t.Fatalf("expected command passed through, got %q", got)
	}
	lines, ok := out.([]string)
	if !ok || len(lines) != 2 {
		t.Fatalf("expected invoker output returned, got %#v", out)
	}
}

func TestExecutePropagatesInvokerError(t *testing.T) {
	boom := errors.New("dism exited with status 87")
	bus := New(func(string) (any, error) { return nil, boom })

	if _, err := bus.Execute(Request{Label: "Apply", Command: "apply-image"}); !errors.Is(err, boom) {
		t.Fatalf("expected invoker error unmodified, got %v", err)
	}
}

func TestExecuteWithoutInvokerFails(t *testing.T) {
	bus := New(nil)
	if _, err := bus.Execute(Request{Label: "Apply", Command: "apply-image"}); err == nil {
		t.Fatalf("expected an error when no invoker is configured")
	}
}
