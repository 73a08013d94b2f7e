package listing

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/piocodec/pio"
)

// addrCount is the number of addresses a JMP can reach.
const addrCount = 32

// ExprResolver names jump targets with a Starlark expression over addr,
// for example `"loop_%d" % addr`. The expression is evaluated up front for
// every reachable address.
func ExprResolver(expr string) (fn pio.ResolverFunc, err error) {
	names := make(map[uint8]string, addrCount)
	for addr := range uint8(addrCount) {
		var name string
		name, err = evalLabel(expr, addr)
		if err != nil {
			err = &ErrExpr{Expr: expr, Addr: addr, Err: err}
			return
		}
		names[addr] = name
	}

	fn = pio.LabelMap(names)
	return
}

// evalLabel evaluates expr with addr bound.
func evalLabel(expr string, addr uint8) (name string, err error) {
	thread := starlark.Thread{Name: "label"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"addr": starlark.MakeInt(int(addr)),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "label", prog, pred)
	if err != nil {
		return
	}

	st_str, ok := dict["rc"].(starlark.String)
	if !ok {
		err = ErrLabelResult
		return
	}

	name = string(st_str)
	if len(name) == 0 {
		err = ErrLabelEmpty
		return
	}

	return
}
