// Package script implements a small line-oriented language to drive the
// containers of this module and observe the outcome of multiple borrows. It
// is used by the splitmut command and by golden-file tests.
//
// Each line holds a command followed by its arguments, separated by spaces.
// Everything after a '#' is a comment. The commands are:
//
//	new <kind> <elem>...      create the container, kind is one of slice, deque,
//	                          map, swiss or ordmap; map elements are key=value
//	get <addr>...             borrow 2 to 4 addresses and print the results
//	swap <n> <m>              swap the values behind results n and m of the last get
//	set <n> <value>           set the value behind result n of the last get
//	push front|back <value>   add a value to a deque
//	pop front|back            remove and print a value of a deque
//	dump                      print the container
//
// Results are numbered from 1. Commands that change the structure of the
// container (new, push and pop) invalidate the results of the last get.
package script

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mna/splitmut/borrow"
	"github.com/mna/splitmut/deque"
)

// RunFiles executes the script files in order, writing their output to w. If
// trace is true, each command is echoed before its output. Errors do not stop
// the execution of a script, the command in error is skipped. The returned
// error, if non-nil, is guaranteed to implement Unwrap() []error.
func RunFiles(ctx context.Context, w io.Writer, trace bool, files ...string) error {
	var errs []error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		b, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		if err := Run(ctx, w, trace, file, b); err != nil {
			errs = append(errs, err.(interface{ Unwrap() []error }).Unwrap()...)
		}
	}
	return errors.Join(errs...)
}

// Run executes the script in src, using filename to report errors. See
// RunFiles for details.
func Run(ctx context.Context, w io.Writer, trace bool, filename string, src []byte) error {
	var errs []error
	in := interp{w: w}

	sc := bufio.NewScanner(bytes.NewReader(src))
	for line := 1; sc.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		text := sc.Text()
		if ix := strings.IndexByte(text, '#'); ix >= 0 {
			text = text[:ix]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if trace {
			fmt.Fprintf(w, "> %s\n", strings.Join(fields, " "))
		}
		if err := in.exec(fields[0], fields[1:]); err != nil {
			errs = append(errs, fmt.Errorf("%s:%d: %s: %w", filename, line, fields[0], err))
		}
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", filename, err))
	}
	return errors.Join(errs...)
}

var (
	errNoContainer = errors.New("no container, use new first")
	errNoResults   = errors.New("no valid results, use get first")
)

type interp struct {
	w    io.Writer
	c    container
	last []borrow.Result[string]
}

func (in *interp) exec(cmd string, args []string) error {
	switch cmd {
	case "new":
		return in.create(args)
	case "get":
		return in.get(args)
	case "swap":
		return in.swap(args)
	case "set":
		return in.set(args)
	case "push":
		return in.push(args)
	case "pop":
		return in.pop(args)
	case "dump":
		return in.dump(args)
	default:
		return errors.New("unknown command")
	}
}

func (in *interp) create(args []string) error {
	if len(args) == 0 {
		return errors.New("missing container kind")
	}
	fn := containerKinds[args[0]]
	if fn == nil {
		return fmt.Errorf("unknown container kind %q", args[0])
	}
	c, err := fn(args[1:])
	if err != nil {
		return err
	}
	in.c, in.last = c, nil
	return nil
}

func (in *interp) get(args []string) error {
	if in.c == nil {
		return errNoContainer
	}
	if len(args) < 2 || len(args) > 4 {
		return fmt.Errorf("want 2 to 4 addresses, got %d", len(args))
	}
	addrs := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid address %q", arg)
		}
		addrs[i] = n
	}

	res := make([]borrow.Result[string], len(addrs))
	in.c.resolve(addrs, res)
	in.last = res
	for i, r := range res {
		switch {
		case r.OK():
			fmt.Fprintf(in.w, "#%d ok %q\n", i+1, r.Ref.Get())
		case errors.Is(r.Err, borrow.ErrNoValue):
			fmt.Fprintf(in.w, "#%d no value\n", i+1)
		case errors.Is(r.Err, borrow.ErrSameValue):
			fmt.Fprintf(in.w, "#%d same value\n", i+1)
		}
	}
	return nil
}

func (in *interp) swap(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("want 2 result numbers, got %d", len(args))
	}
	r1, err := in.result(args[0])
	if err != nil {
		return err
	}
	r2, err := in.result(args[1])
	if err != nil {
		return err
	}
	borrow.Swap(r1, r2)
	return nil
}

func (in *interp) set(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("want a result number and a value, got %d arguments", len(args))
	}
	r, err := in.result(args[0])
	if err != nil {
		return err
	}
	r.Set(args[1])
	return nil
}

func (in *interp) push(args []string) error {
	d, err := in.deque()
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("want a side and a value, got %d arguments", len(args))
	}
	switch args[0] {
	case "front":
		d.PushFront(args[1])
	case "back":
		d.PushBack(args[1])
	default:
		return fmt.Errorf("invalid side %q", args[0])
	}
	in.last = nil
	return nil
}

func (in *interp) pop(args []string) error {
	d, err := in.deque()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("want a side, got %d arguments", len(args))
	}
	if d.Len() == 0 {
		return deque.ErrEmpty
	}

	var v string
	switch args[0] {
	case "front":
		v = d.PopFront()
	case "back":
		v = d.PopBack()
	default:
		return fmt.Errorf("invalid side %q", args[0])
	}
	in.last = nil
	fmt.Fprintf(in.w, "%q\n", v)
	return nil
}

func (in *interp) dump(args []string) error {
	if in.c == nil {
		return errNoContainer
	}
	if len(args) != 0 {
		return errors.New("unexpected arguments")
	}
	in.c.dump(in.w)
	return nil
}

// result returns the handle of the result numbered arg in the last get.
func (in *interp) result(arg string) (borrow.Ref[string], error) {
	if len(in.last) == 0 {
		return nil, errNoResults
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(in.last) {
		return nil, fmt.Errorf("invalid result number %q", arg)
	}
	r := in.last[n-1]
	if !r.OK() {
		return nil, fmt.Errorf("result #%d: %w", n, errors.Unwrap(r.Err))
	}
	return r.Ref, nil
}

func (in *interp) deque() (*deque.Deque[string], error) {
	if in.c == nil {
		return nil, errNoContainer
	}
	dc, ok := in.c.(dequeContainer)
	if !ok {
		return nil, errors.New("container is not a deque")
	}
	return dc.d, nil
}

func parsePairs(elems []string, put func(k int, v string)) error {
	for _, elem := range elems {
		ks, v, ok := strings.Cut(elem, "=")
		if !ok {
			return fmt.Errorf("invalid map element %q, want key=value", elem)
		}
		k, err := strconv.Atoi(ks)
		if err != nil {
			return fmt.Errorf("invalid map key %q", ks)
		}
		put(k, v)
	}
	return nil
}
