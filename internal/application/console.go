package application

import (
	"fmt"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports"
)

// ConsoleCapture swaps the managed console writers for an in-memory
// StringWriter so anything the guest assembly prints lands in a buffer we
// can read back. Each Arm/Capture pair is one window with its own buffer;
// Restore puts the program's default writers back and must run before the
// console is handed to anyone else.
type ConsoleCapture struct {
	mscorlib ports.Assembly
	releaser ports.Releaser

	writer      domain.Value
	originalOut domain.Value
	originalErr domain.Value
}

func NewConsoleCapture(mscorlib ports.Assembly, releaser ports.Releaser) *ConsoleCapture {
	return &ConsoleCapture{mscorlib: mscorlib, releaser: releaser}
}

// Arm creates a fresh StringWriter and points both console streams at it.
// The default writers are saved on the first window only; later windows
// keep them so Restore reinstalls the program's own sinks, never a stale
// writer. An undrained sink from a previous window is released.
func (c *ConsoleCapture) Arm() error {
	inv := NewInvoker(c.mscorlib, c.releaser)

	writer, err := c.mscorlib.CreateInstance("System.IO.StringWriter")
	if err != nil {
		return fmt.Errorf("create StringWriter: %w", err)
	}
	c.releaseWriter()
	c.writer = writer

	if c.originalOut.IsEmpty() && c.originalErr.IsEmpty() {
		c.originalOut, err = inv.PropertyValue("System.Console", "Out", domain.Empty())
		if err != nil {
			return fmt.Errorf("save Console.Out: %w", err)
		}
		c.originalErr, err = inv.PropertyValue("System.Console", "Error", domain.Empty())
		if err != nil {
			return fmt.Errorf("save Console.Error: %w", err)
		}
	}

	if _, err = inv.CallStatic("System.Console", "SetOut", []domain.Value{writer}); err != nil {
		return fmt.Errorf("redirect Console.Out: %w", err)
	}
	if _, err = inv.CallStatic("System.Console", "SetError", []domain.Value{writer}); err != nil {
		return fmt.Errorf("redirect Console.Error: %w", err)
	}
	return nil
}

// Capture reads the buffered text and releases the sink, closing the
// window. With no window open it returns empty; arm again for a fresh,
// independent buffer.
func (c *ConsoleCapture) Capture() (string, error) {
	if c.writer.Kind() != domain.KindObject {
		return "", nil
	}
	inv := NewInvoker(c.mscorlib, c.releaser)
	text, err := inv.CallInstance("System.IO.StringWriter", "ToString", c.writer, nil)
	if err != nil {
		return "", fmt.Errorf("read StringWriter: %w", err)
	}
	c.releaseWriter()
	return text.String()
}

// Restore reinstates the saved default writers and releases everything
// this capture holds. Safe to call when Arm never ran or already failed
// partway.
func (c *ConsoleCapture) Restore() error {
	if c.originalOut.IsEmpty() && c.originalErr.IsEmpty() {
		c.release()
		return nil
	}
	inv := NewInvoker(c.mscorlib, c.releaser)

	var firstErr error
	if _, err := inv.CallStatic("System.Console", "SetOut", []domain.Value{c.originalOut}); err != nil {
		firstErr = fmt.Errorf("restore Console.Out: %w", err)
	}
	if _, err := inv.CallStatic("System.Console", "SetError", []domain.Value{c.originalErr}); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("restore Console.Error: %w", err)
	}
	c.release()
	return firstErr
}

func (c *ConsoleCapture) releaseWriter() {
	if c.releaser != nil && c.writer.Kind() == domain.KindObject {
		c.releaser.Release(c.writer)
	}
	c.writer = domain.Empty()
}

func (c *ConsoleCapture) release() {
	c.releaseWriter()
	if c.releaser != nil {
		for _, v := range []domain.Value{c.originalOut, c.originalErr} {
			if v.Kind() == domain.KindObject {
				c.releaser.Release(v)
			}
		}
	}
	c.originalOut = domain.Empty()
	c.originalErr = domain.Empty()
}
