package parser

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"svast/internal/ast"
	"svast/internal/diag"
	"svast/internal/token"
)

func TestModulePorts(t *testing.T) {
	tree, bag := parseSource(t, "module m(input a, output b); endmodule")
	mod := onlyModule(t, tree)
	if mod.Name != "m" {
		t.Fatalf("name = %q, want m", mod.Name)
	}
	if want := []string{"input", "a", "output", "b"}; !reflect.DeepEqual(mod.Ports, want) {
		t.Fatalf("ports = %q, want %q", mod.Ports, want)
	}
	if len(mod.Body.Items) != 0 || !mod.Body.Terminated {
		t.Fatalf("expected empty terminated body, got %d items terminated=%v", len(mod.Body.Items), mod.Body.Terminated)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
}

func TestClassWithFunction(t *testing.T) {
	tree, _ := parseSource(t, "class c extends base; function void f(int x); x; endfunction endclass")
	cls := onlyClass(t, tree)
	if cls.Name != "c" || ast.Deref(cls.Extends) != "base" || !cls.Terminated {
		t.Fatalf("unexpected class header: %+v", cls)
	}
	if len(cls.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(cls.Members))
	}
	fn, ok := cls.Members[0].(*ast.Function)
	if !ok {
		t.Fatalf("member is %T, want *ast.Function", cls.Members[0])
	}
	if fn.Name != "f" || fn.ReturnType != "void" {
		t.Fatalf("function = %q returning %q", fn.Name, fn.ReturnType)
	}
	if want := []string{"int", "x"}; !reflect.DeepEqual(fn.Args, want) {
		t.Fatalf("args = %q, want %q", fn.Args, want)
	}
	if got := statements(t, fn.Body); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("body = %q", got)
	}
}

func TestClassWithoutExtends(t *testing.T) {
	tree, _ := parseSource(t, "class c; int id; endclass")
	cls := onlyClass(t, tree)
	if cls.Extends != nil {
		t.Fatalf("extends must be absent, got %q", *cls.Extends)
	}
	if len(cls.Members) != 0 {
		t.Fatalf("non-function members must be skipped, got %d", len(cls.Members))
	}
}

func TestSignalDeclaration(t *testing.T) {
	tree, _ := parseSource(t, "module m; logic [7:0] a, b; endmodule")
	mod := onlyModule(t, tree)
	sig := item[*ast.Signal](t, mod.Body, 0)
	if sig.DataType != "logic" || ast.Deref(sig.Width) != "[7:0]" {
		t.Fatalf("signal = %q %q", sig.DataType, ast.Deref(sig.Width))
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(sig.Names, want) {
		t.Fatalf("names = %q, want %q", sig.Names, want)
	}
	if len(mod.Body.Items) != 1 {
		t.Fatalf("expected 1 body item, got %d", len(mod.Body.Items))
	}
}

func TestSignalForms(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		direction string
		dataType  string
		width     *string
		names     []string
	}{
		{"no width", "int i;", "", "int", nil, []string{"i"}},
		{"packed dims", "logic [3:0][7:0] bus;", "", "logic", ast.Str("[3:0][7:0]"), []string{"bus"}},
		{"signed", "logic signed [7:0] s;", "", "logic signed", ast.Str("[7:0]"), []string{"s"}},
		{"direction", "input wire [1:0] sel;", "input", "wire", ast.Str("[1:0]"), []string{"sel"}},
		{"unpacked", "reg mem [0:3], x;", "", "reg", nil, []string{"mem[0:3]", "x"}},
		{"initialiser", "bit b = f(1, 2), c;", "", "bit", nil, []string{"b=f(1,2)", "c"}},
		{"sized literal", "logic q = 8'hFF;", "", "logic", nil, []string{"q=8'hFF"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, _ := parseSource(t, "module m; "+tt.src+" endmodule")
			sig := item[*ast.Signal](t, onlyModule(t, tree).Body, 0)
			if sig.Direction != tt.direction || sig.DataType != tt.dataType {
				t.Fatalf("got %q %q, want %q %q", sig.Direction, sig.DataType, tt.direction, tt.dataType)
			}
			if !reflect.DeepEqual(sig.Width, tt.width) {
				t.Fatalf("width = %v, want %v", sig.Width, tt.width)
			}
			if !reflect.DeepEqual(sig.Names, tt.names) {
				t.Fatalf("names = %q, want %q", sig.Names, tt.names)
			}
		})
	}
}

func TestDirectionWithoutType(t *testing.T) {
	tree, _ := parseSource(t, "module m; input clk; endmodule")
	got := statements(t, onlyModule(t, tree).Body)
	if !reflect.DeepEqual(got, []string{"input clk"}) {
		t.Fatalf("body = %q", got)
	}
}

func TestAlwaysWithIf(t *testing.T) {
	tree, _ := parseSource(t, "module m; always_ff @(posedge clk) if (rst) a <= 0; endmodule")
	mod := onlyModule(t, tree)
	if len(mod.Body.Items) != 1 {
		t.Fatalf("expected 1 body item, got %d", len(mod.Body.Items))
	}
	alw := item[*ast.Always](t, mod.Body, 0)
	if alw.Process != "always_ff" || ast.Deref(alw.Sensitivity) != "@(posedge clk)" {
		t.Fatalf("always = %q %q", alw.Process, ast.Deref(alw.Sensitivity))
	}
	ifn := item[*ast.If](t, alw.Body, 0)
	if ifn.Cond != "rst" {
		t.Fatalf("cond = %q", ifn.Cond)
	}
	if got := statements(t, ifn.Then); !reflect.DeepEqual(got, []string{"a < = 0"}) {
		t.Fatalf("then = %q", got)
	}
	if ifn.Else != nil {
		t.Fatalf("else must be absent")
	}
	if !mod.Body.Terminated {
		t.Fatalf("endmodule must be consumed")
	}
}

func TestSensitivityForms(t *testing.T) {
	tests := []struct {
		src  string
		want *string
	}{
		{"always @* x = y;", ast.Str("@*")},
		{"always @(*) x = y;", ast.Str("@(*)")},
		{"always @clk x = y;", ast.Str("@clk")},
		{"always @(posedge clk or negedge rst_n) x = y;", ast.Str("@(posedge clk or negedge rst_n)")},
		{"always_comb x = y;", nil},
	}
	for _, tt := range tests {
		tree, _ := parseSource(t, "module m; "+tt.src+" endmodule")
		alw := item[*ast.Always](t, onlyModule(t, tree).Body, 0)
		if !reflect.DeepEqual(alw.Sensitivity, tt.want) {
			t.Fatalf("%q: sensitivity = %v, want %v", tt.src, alw.Sensitivity, tt.want)
		}
		if got := statements(t, alw.Body); !reflect.DeepEqual(got, []string{"x = y"}) {
			t.Fatalf("%q: body = %q", tt.src, got)
		}
	}
}

func TestIfElseChain(t *testing.T) {
	src := "module m; always_comb if (a == 1) x = 1; else if (b) x = 2; else x = 3; endmodule"
	tree, _ := parseSource(t, src)
	alw := item[*ast.Always](t, onlyModule(t, tree).Body, 0)
	first := item[*ast.If](t, alw.Body, 0)
	if first.Cond != "a==1" {
		t.Fatalf("cond = %q", first.Cond)
	}
	if first.Else == nil {
		t.Fatalf("expected else branch")
	}
	second := item[*ast.If](t, *first.Else, 0)
	if second.Cond != "b" || second.Else == nil {
		t.Fatalf("unexpected nested if %+v", second)
	}
	if got := statements(t, *second.Else); !reflect.DeepEqual(got, []string{"x = 3"}) {
		t.Fatalf("final else = %q", got)
	}
}

func TestCase(t *testing.T) {
	src := "module m; always_comb case (sel) 2'b00: y = a; default: begin y = b; end endcase endmodule"
	tree, _ := parseSource(t, src)
	alw := item[*ast.Always](t, onlyModule(t, tree).Body, 0)
	cs := item[*ast.Case](t, alw.Body, 0)
	if cs.Expr != "sel" || !cs.Body.Terminated {
		t.Fatalf("case = %q terminated=%v", cs.Expr, cs.Body.Terminated)
	}
	if len(cs.Body.Items) != 3 {
		t.Fatalf("expected 3 case items, got %d", len(cs.Body.Items))
	}
	if got := item[*ast.Statement](t, cs.Body, 0).Code; got != "2'b00 : y = a" {
		t.Fatalf("arm = %q", got)
	}
	if got := item[*ast.Statement](t, cs.Body, 1).Code; got != "default :" {
		t.Fatalf("default arm = %q", got)
	}
	nb := item[*ast.NestedBlock](t, cs.Body, 2)
	if got := statements(t, nb.Body); !reflect.DeepEqual(got, []string{"y = b"}) {
		t.Fatalf("nested = %q", got)
	}
}

func TestFunctionHeaders(t *testing.T) {
	tests := []struct {
		src      string
		lifetime string
		ret      string
		name     string
		args     []string
	}{
		{"function new(int id_val, string name_val); endfunction", "", "", "new", []string{"int", "id_val", "string", "name_val"}},
		{"function void display(); endfunction", "", "void", "display", nil},
		{"function automatic int add(int a, int b); endfunction", "automatic", "int", "add", []string{"int", "a", "int", "b"}},
		{"function logic [7:0] f; endfunction", "", "logic[7:0]", "f", nil},
		{"function int unsigned g(); endfunction", "", "int unsigned", "g", nil},
		{"function static(); endfunction", "", "", "static", nil},
		{"function h(int a = max(1, 2)); endfunction", "", "", "h", []string{"int", "a", "=", "max", "(", "1", ",", "2", ")"}},
	}
	for _, tt := range tests {
		tree, _ := parseSource(t, "module m; "+tt.src+" endmodule")
		fn := item[*ast.Function](t, onlyModule(t, tree).Body, 0)
		if fn.Lifetime != tt.lifetime || fn.ReturnType != tt.ret || fn.Name != tt.name {
			t.Fatalf("%q: got lifetime=%q ret=%q name=%q", tt.src, fn.Lifetime, fn.ReturnType, fn.Name)
		}
		if !reflect.DeepEqual(fn.Args, tt.args) {
			t.Fatalf("%q: args = %q, want %q", tt.src, fn.Args, tt.args)
		}
		if !fn.Body.Terminated {
			t.Fatalf("%q: endfunction not consumed", tt.src)
		}
	}
}

func TestModuleParams(t *testing.T) {
	tree, _ := parseSource(t, "module m #(parameter W = 8, D = 2) (input logic [W-1:0] d); endmodule")
	mod := onlyModule(t, tree)
	if want := []string{"parameter", "W", "=", "8", "D", "=", "2"}; !reflect.DeepEqual(mod.Params, want) {
		t.Fatalf("params = %q, want %q", mod.Params, want)
	}
	if want := []string{"input", "logic", "[", "W", "-", "1", ":", "0", "]", "d"}; !reflect.DeepEqual(mod.Ports, want) {
		t.Fatalf("ports = %q, want %q", mod.Ports, want)
	}
}

func TestMisspelledTerminator(t *testing.T) {
	tree, bag := parseSource(t, "module m; endmodul")
	mod := onlyModule(t, tree)
	if mod.Body.Terminated {
		t.Fatalf("body must be unterminated")
	}
	if got := statements(t, mod.Body); !reflect.DeepEqual(got, []string{"endmodul"}) {
		t.Fatalf("body = %q", got)
	}
	if !hasCode(bag, diag.SynMissingTerminator) {
		t.Fatalf("expected missing terminator warning, got %s", diagnosticsSummary(bag))
	}
	if bag.HasErrors() {
		t.Fatalf("truncation must not produce errors: %s", diagnosticsSummary(bag))
	}
}

func TestNestingDepth(t *testing.T) {
	src := "module m; always_ff @(posedge clk) begin if (en) logic [1:0] s; end endmodule"
	tree, _ := parseSource(t, src)
	mod := onlyModule(t, tree)
	alw := item[*ast.Always](t, mod.Body, 0)
	nb := item[*ast.NestedBlock](t, alw.Body, 0)
	ifn := item[*ast.If](t, nb.Body, 0)
	sig := item[*ast.Signal](t, ifn.Then, 0)
	if sig.DataType != "logic" || !reflect.DeepEqual(sig.Names, []string{"s"}) {
		t.Fatalf("unexpected signal %+v", sig)
	}
	if len(mod.Body.Items) != 1 || len(alw.Body.Items) != 1 || len(nb.Body.Items) != 1 || len(ifn.Then.Items) != 1 {
		t.Fatalf("unexpected extra items at some level")
	}
}

func TestTerminatorConsumption(t *testing.T) {
	toks := lex("module m; x = 1; endmodule trailing")
	p := newParser(toks, Options{})
	mod := p.parseModule()
	if !mod.Body.Terminated {
		t.Fatalf("endmodule not consumed")
	}
	if got := p.cur.peek(); got.Text != "trailing" {
		t.Fatalf("cursor at %v, want the token after endmodule", got)
	}
	for _, leaf := range ast.Leaves(mod) {
		if strings.Contains(leaf, "endmodule") {
			t.Fatalf("terminator leaked into body: %q", leaf)
		}
	}
}

func TestTruncationTolerance(t *testing.T) {
	body := "module m; logic a; always_comb begin a = 1; end function int f(); return 1; endfunction "
	full, _ := parseSource(t, body+"endmodule")
	cut, _ := parseSource(t, body)
	fm, cm := onlyModule(t, full), onlyModule(t, cut)
	if !fm.Body.Terminated || cm.Body.Terminated {
		t.Fatalf("terminated flags = %v, %v", fm.Body.Terminated, cm.Body.Terminated)
	}
	if !reflect.DeepEqual(ast.Leaves(fm), ast.Leaves(cm)) {
		t.Fatalf("leaves differ:\n%q\n%q", ast.Leaves(fm), ast.Leaves(cm))
	}
	if !reflect.DeepEqual(ast.Count(fm), ast.Count(cm)) {
		t.Fatalf("shape differs: %v vs %v", ast.Count(fm), ast.Count(cm))
	}
}

func TestFenceClosesEnclosingModule(t *testing.T) {
	tree, bag := parseSource(t, "module a; always_comb begin x = 1; endmodule module b; endmodule")
	if len(tree.Items) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(tree.Items))
	}
	first := tree.Items[0].(*ast.Module)
	if !first.Body.Terminated {
		t.Fatalf("outer endmodule must close the first module")
	}
	alw := item[*ast.Always](t, first.Body, 0)
	nb := item[*ast.NestedBlock](t, alw.Body, 0)
	if nb.Body.Terminated {
		t.Fatalf("begin without end must be unterminated")
	}
	if second := tree.Items[1].(*ast.Module); second.Name != "b" || !second.Body.Terminated {
		t.Fatalf("second module = %+v", second)
	}
	if !hasCode(bag, diag.SynMissingTerminator) {
		t.Fatalf("expected missing terminator warning, got %s", diagnosticsSummary(bag))
	}
}

func TestModuleKeywordInsideModuleIsStatement(t *testing.T) {
	tree, _ := parseSource(t, "module a; x; module b; endmodule")
	mod := onlyModule(t, tree)
	if !mod.Body.Terminated {
		t.Fatalf("endmodule must close module a")
	}
	if got := statements(t, mod.Body); !reflect.DeepEqual(got, []string{"x", "module b"}) {
		t.Fatalf("body = %q", got)
	}
}

func TestClassInsideModuleKeepsModuleBody(t *testing.T) {
	tree, bag := parseSource(t, "module m; class c; endclass logic a; endmodule")
	mod := onlyModule(t, tree)
	if !mod.Body.Terminated {
		t.Fatalf("endmodule not consumed")
	}
	if len(mod.Body.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(mod.Body.Items))
	}
	if got := item[*ast.Statement](t, mod.Body, 0).Code; got != "class c" {
		t.Fatalf("item 0 = %q", got)
	}
	if got := item[*ast.Statement](t, mod.Body, 1).Code; got != "endclass" {
		t.Fatalf("item 1 = %q", got)
	}
	if sig := item[*ast.Signal](t, mod.Body, 2); !reflect.DeepEqual(sig.Names, []string{"a"}) {
		t.Fatalf("signal = %+v", sig)
	}
	if hasCode(bag, diag.SynStrayTopLevel) || hasCode(bag, diag.SynMissingTerminator) {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
}

func TestUnbalancedInitialiserEndsAtSemicolon(t *testing.T) {
	tree, _ := parseSource(t, "module m; logic a = (b; x = 1; always_comb y = 2; endmodule")
	mod := onlyModule(t, tree)
	sig := item[*ast.Signal](t, mod.Body, 0)
	if !reflect.DeepEqual(sig.Names, []string{"a=(b"}) {
		t.Fatalf("names = %q", sig.Names)
	}
	if got := item[*ast.Statement](t, mod.Body, 1).Code; got != "x = 1" {
		t.Fatalf("item 1 = %q", got)
	}
	item[*ast.Always](t, mod.Body, 2)
	if !mod.Body.Terminated {
		t.Fatalf("endmodule not consumed")
	}
}

func TestStrayTopLevel(t *testing.T) {
	tree, bag := parseSource(t, "`timescale 1ns/1ps\nimport pkg::*; module m; endmodule")
	if onlyModule(t, tree).Name != "m" {
		t.Fatalf("module not found after stray tokens")
	}
	if !hasCode(bag, diag.SynStrayTopLevel) {
		t.Fatalf("expected stray top-level note, got %s", diagnosticsSummary(bag))
	}
}

func TestEndLabels(t *testing.T) {
	tree, _ := parseSource(t, "module m; initial begin : blk x = 1; end : blk endmodule : m")
	mod := onlyModule(t, tree)
	if !mod.Body.Terminated {
		t.Fatalf("endmodule not consumed")
	}
	if got := item[*ast.Statement](t, mod.Body, 0).Code; got != "initial" {
		t.Fatalf("first item = %q", got)
	}
	nb := item[*ast.NestedBlock](t, mod.Body, 1)
	if got := statements(t, nb.Body); !reflect.DeepEqual(got, []string{"x = 1"}) {
		t.Fatalf("block = %q", got)
	}
	if len(mod.Body.Items) != 2 {
		t.Fatalf("labels must not become items, got %d items", len(mod.Body.Items))
	}
}

func TestCustomStops(t *testing.T) {
	src := "module m; a = b begin c; end endmodule"
	tree, _ := parseSource(t, src)
	mod := onlyModule(t, tree)
	if got := item[*ast.Statement](t, mod.Body, 0).Code; got != "a = b" {
		t.Fatalf("default stops: %q", got)
	}
	item[*ast.NestedBlock](t, mod.Body, 1)

	stops := StopSet{Symbols: []byte{';'}}
	tree = Parse(lex(src), Options{Stops: &stops})
	mod = onlyModule(t, tree)
	if got := statements(t, mod.Body); !reflect.DeepEqual(got, []string{"a = b begin c", "end"}) {
		t.Fatalf("custom stops: %q", got)
	}
	if !mod.Body.Terminated {
		t.Fatalf("fences must still close the module")
	}
}

func TestMaxDepth(t *testing.T) {
	src := "module m; " + strings.Repeat("begin ", 10) + strings.Repeat("end ", 10) + "endmodule"
	bag := diag.NewBag(0)
	tree := Parse(lex(src), Options{MaxDepth: 4, Reporter: diag.BagReporter{Bag: bag}})
	if got := ast.Count(tree)[ast.KindNestedBlock]; got != 4 {
		t.Fatalf("nested blocks = %d, want 4", got)
	}
	n := 0
	for _, d := range bag.Items() {
		if d.Code == diag.SynNestingTooDeep {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("want exactly one depth warning, got %d: %s", n, diagnosticsSummary(bag))
	}
}

func nesting(n ast.Node) int {
	deepest := 0
	for _, child := range ast.Children(n) {
		deepest = max(deepest, nesting(child))
	}
	switch n.Kind() {
	case ast.KindFunction, ast.KindAlways, ast.KindNestedBlock, ast.KindIf, ast.KindCase:
		return deepest + 1
	}
	return deepest
}

func TestDeepInputDoesNotOverflow(t *testing.T) {
	src := "module m; " + strings.Repeat("begin if (x) ", 50000)
	tree := ParseText([]byte(src), Options{})
	if got := nesting(tree); got != DefaultMaxDepth {
		t.Fatalf("nesting = %d, want %d", got, DefaultMaxDepth)
	}
}

func TestTotality(t *testing.T) {
	inputs := []string{
		"",
		"module",
		"class",
		"module m(",
		"module m(input a; endmodule",
		"module m; logic [7:0",
		"module m; always @(",
		"module m; if",
		"module m; if (a",
		"module m; case",
		"module m; function",
		"class c extends",
		"class c; function",
		"endmodule endclass end endcase",
		"module m; else end endcase endfunction endmodule",
		"module m; ;;;; endmodule",
		"((((((((",
		")))))]]]]",
		"module m; begin end end end endmodule",
		"module m; input",
		"module m; always_comb",
		"module m; always_comb else",
	}
	for _, in := range inputs {
		toks := lex(in)
		p := newParser(toks, Options{})
		tree := p.parseSource()
		if tree == nil {
			t.Fatalf("%q: nil tree", in)
		}
		if p.cur.pos > len(toks) {
			t.Fatalf("%q: cursor %d past %d tokens", in, p.cur.pos, len(toks))
		}
		if !p.cur.atEOF() {
			t.Fatalf("%q: input not fully consumed, stopped at %v", in, p.cur.peek())
		}
	}
}

func TestCursorNeverOverruns(t *testing.T) {
	c := newCursor([]token.Token{{Kind: token.Ident, Text: "a"}})
	for i := 0; i < 5; i++ {
		c.advance()
	}
	if c.pos != 1 {
		t.Fatalf("pos = %d, want 1", c.pos)
	}
	if !c.peek().IsEOF() || !c.peekAt(3).IsEOF() {
		t.Fatalf("reads past the end must yield EOF")
	}
}

func TestCursorWithoutEOF(t *testing.T) {
	c := newCursor(nil)
	if !c.advance().IsEOF() || c.pos != 0 {
		t.Fatalf("empty cursor must stay at EOF")
	}
}

func TestSampleFile(t *testing.T) {
	data, err := os.ReadFile("testdata/top.sv")
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	tree, bag := parseSource(t, string(data))
	if bag.HasWarnings() {
		t.Fatalf("sample must parse cleanly: %s", diagnosticsSummary(bag))
	}
	if len(tree.Items) != 2 {
		t.Fatalf("expected class and module, got %d items", len(tree.Items))
	}

	cls := tree.Items[0].(*ast.Class)
	if cls.Name != "my_class" || len(cls.Members) != 2 {
		t.Fatalf("class %q with %d members", cls.Name, len(cls.Members))
	}
	ctor := cls.Members[0].(*ast.Function)
	if ctor.Name != "new" || ctor.ReturnType != "" {
		t.Fatalf("constructor = %q returning %q", ctor.Name, ctor.ReturnType)
	}
	if got := statements(t, ctor.Body); !reflect.DeepEqual(got, []string{"id = id_val", "name = name_val"}) {
		t.Fatalf("constructor body = %q", got)
	}
	display := cls.Members[1].(*ast.Function)
	if got := statements(t, display.Body); !reflect.DeepEqual(got, []string{`$display ( "ID=%0d, Name=%s" , id , name )`}) {
		t.Fatalf("display body = %q", got)
	}

	mod := tree.Items[1].(*ast.Module)
	if mod.Name != "top_module" || len(mod.Ports) != 45 {
		t.Fatalf("module %q with %d port tokens", mod.Name, len(mod.Ports))
	}
	if got := item[*ast.Statement](t, mod.Body, 0).Code; got != "my_class obj" {
		t.Fatalf("first item = %q", got)
	}
	if got := item[*ast.Statement](t, mod.Body, 1).Code; got != "initial" {
		t.Fatalf("second item = %q", got)
	}
	initial := item[*ast.NestedBlock](t, mod.Body, 2)
	if got := statements(t, initial.Body); !reflect.DeepEqual(got, []string{`obj = new ( 1 , "example" )`, "obj . display ( )"}) {
		t.Fatalf("initial block = %q", got)
	}
	alw := item[*ast.Always](t, mod.Body, 3)
	if ast.Deref(alw.Sensitivity) != "@(posedge clk or negedge rst_n)" {
		t.Fatalf("sensitivity = %q", ast.Deref(alw.Sensitivity))
	}
	outer := item[*ast.NestedBlock](t, alw.Body, 0)
	reset := item[*ast.If](t, outer.Body, 0)
	if reset.Cond != "!rst_n" || reset.Else == nil {
		t.Fatalf("reset if = %+v", reset)
	}
	enable := item[*ast.If](t, *reset.Else, 0)
	if enable.Cond != "enable&valid" {
		t.Fatalf("else-if cond = %q", enable.Cond)
	}
	work := item[*ast.NestedBlock](t, enable.Then, 0)
	if got := statements(t, work.Body); !reflect.DeepEqual(got, []string{"sum < = a + b", "ready < = 1", "done < = trigger"}) {
		t.Fatalf("enable branch = %q", got)
	}
}

func TestJoinCompact(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b", "a+b"},
		{"posedge clk", "posedge clk"},
		{"a / / b", "a/ /b"},
		{"a / * b", "a/ *b"},
		{"8 'h FF", "8 'h FF"},
		{"x [ 3 : 0 ]", "x[3:0]"},
	}
	for _, tt := range tests {
		toks := lex(tt.src)
		if got := joinCompact(toks[:len(toks)-1]); got != tt.want {
			t.Fatalf("joinCompact(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}
